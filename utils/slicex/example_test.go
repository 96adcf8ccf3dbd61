package slicex_test

import (
	"errors"
	"fmt"

	"github.com/msto63/pyutils/utils/slicex"
)

func ExampleEnumerate() {
	for _, p := range slicex.Enumerate([]string{"apple", "banana", "cherry"}) {
		fmt.Printf("%d: %s\n", p.First, p.Second)
	}
	// Output:
	// 0: apple
	// 1: banana
	// 2: cherry
}

func ExampleZip() {
	fmt.Println(slicex.Zip([]string{"Alice", "Bob", "Charlie"}, []int{25, 30}))
	// Output: [(Alice, 25) (Bob, 30)]
}

func ExampleChunk() {
	fmt.Println(slicex.Chunk([]int{1, 2, 3, 4, 5}, 2))
	// Output: [[1 2] [3 4] [5]]
}

func ExampleMax() {
	largest, _ := slicex.Max([]int{3, 7, 1, 9, 4})
	fmt.Println(largest)

	_, err := slicex.Max([]int{})
	fmt.Println(errors.Is(err, slicex.ErrEmptyContainer), err)
	// Output:
	// 9
	// true max() arg is an empty container
}

func ExampleSum() {
	fmt.Println(slicex.Sum([]int{1, 2, 3, 4, 5}))
	fmt.Println(slicex.Sum([]float64{0.5, 0.25}, 1))
	// Output:
	// 15
	// 1.75
}

func ExampleAccumulatePrefix() {
	fmt.Println(slicex.AccumulatePrefix([]int{1, 2, 3, 4}))
	// Output: [1 3 6 10]
}
