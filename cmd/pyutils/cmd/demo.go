package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/pyutils/core/log"
	"github.com/msto63/pyutils/utils/filex"
	"github.com/msto63/pyutils/utils/mapx"
	"github.com/msto63/pyutils/utils/parsex"
	"github.com/msto63/pyutils/utils/seqx"
	"github.com/msto63/pyutils/utils/slicex"
	"github.com/msto63/pyutils/utils/stringx"
)

func newDemoCmd(a *app) *cobra.Command {
	var (
		name string
		keep bool
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Walk through every helper with sample data",
		Long: `Runs a guided tour of the utility packages: printing and input, string
conversion and parsing, ranges, sequence helpers, string helpers and a
file round-trip. Without --name the demo asks for a name on stdin.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := &demo{
				app:    a,
				styles: newDemoStyles(cmd.OutOrStdout()),
				keep:   a.settings.Demo.KeepFiles || keep,
			}
			if cmd.Flags().Changed("name") {
				d.name = &name
			}
			return d.run()
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "name to greet instead of asking")
	cmd.Flags().BoolVar(&keep, "keep", false, "keep the file written by the demo")
	return cmd
}

// demo prints the walkthrough; the first write error stops further output
type demo struct {
	*app
	styles demoStyles
	name   *string
	keep   bool
	step   int
	err    error
}

func (d *demo) print(args ...any) {
	if d.err == nil {
		d.err = d.console.Print(args...)
	}
}

func (d *demo) section(title string) {
	d.step++
	d.print(d.styles.section.Render(fmt.Sprintf("%d. %s", d.step, title)))
}

func (d *demo) run() error {
	d.print(d.styles.title.Render("pyutils demo"))

	d.section("print")
	d.print("Hello, World!")

	d.section("input")
	var name string
	if d.name != nil {
		name = *d.name
	} else {
		name = d.console.Input("Enter your name: ")
	}
	d.print("Hello, " + name + "!")

	d.section("print with several arguments")
	d.print("This", "is", "a", "test")

	d.section("str")
	d.print("String representation of number: " + stringx.Str(123))

	d.conversions()
	d.ranges()
	d.sequences()
	d.strings()
	d.files()

	return d.err
}

func (d *demo) conversions() {
	d.section("to_int, to_double, to_bool")
	if v, ok := parsex.ToInt("42"); ok {
		d.print("Converted to int:", v)
	}
	if v, ok := parsex.ToDouble("3.14"); ok {
		d.print("Converted to double:", v)
	}
	if v, ok := parsex.ToBool("yes"); ok {
		d.print("Converted to bool:", v)
	}
	if _, ok := parsex.ToInt("42a"); !ok {
		d.print("to_int(\"42a\") is", d.styles.fail.Render("absent"))
	}

	d.section("len")
	d.print("Length of 'Hello': " + stringx.Str(len("Hello")))
}

func (d *demo) ranges() {
	d.section("range")
	d.print("Range from 0 to 4:")
	for v := range seqx.NewRange(5).All() {
		d.print(v)
	}

	down := seqx.NewRangeStep(10, 0, -3)
	texts := slicex.Map(down.Slice(), func(v int64) string { return stringx.Str(v) })
	d.print(down.String()+":", d.styles.value.Render(stringx.Join(texts, " ")))
}

func (d *demo) sequences() {
	fruits := []string{"apple", "banana", "cherry"}

	d.section("enumerate")
	for _, p := range slicex.Enumerate(fruits) {
		d.print("Index: " + stringx.Str(p.First) + ", Value: " + p.Second)
	}

	d.section("zip")
	for _, p := range slicex.Zip([]int{1, 2, 3}, []rune{'a', 'b', 'c'}) {
		d.print("Num: " + stringx.Str(p.First) + ", Char: " + string(p.Second))
	}

	d.section("map (squared)")
	for _, v := range slicex.Map([]int{1, 2, 3, 4}, func(x int) int { return x * x }) {
		d.print(v)
	}

	d.section("filter (x > 2)")
	for _, v := range slicex.Filter([]int{1, 2, 3, 4}, func(x int) bool { return x > 2 }) {
		d.print(v)
	}

	d.section("sum")
	d.print("Sum of [1,2,3,4]:", slicex.Sum([]int{1, 2, 3, 4}))

	d.section("max and min")
	values := []int{1, 5, 3, 9, 2}
	maxVal, _ := slicex.Max(values)
	minVal, _ := slicex.Min(values)
	d.print("Max: " + stringx.Str(maxVal) + ", Min: " + stringx.Str(minVal))
	if _, err := slicex.Max([]int{}); err != nil {
		d.logger.LogError(err)
		d.print("Max of []:", d.styles.fail.Render(err.Error()))
	}

	d.section("more sequence helpers")
	d.print("chunk:", slicex.Chunk([]int{1, 2, 3, 4, 5}, 2))
	d.print("product:", slicex.Product([]int{1, 2}, []string{"x", "y"}))
	d.print("accumulate:", slicex.AccumulatePrefix([]int{1, 2, 3, 4}))
	d.print("unique:", slicex.Unique([]int{3, 1, 3, 2, 1}))
	d.print("sorted:", slicex.Sorted([]string{"pear", "apple", "fig"}))
	d.print("any/all of []:", slicex.Any(nil), slicex.All(nil))
	d.print("clamp(15, 0, 10):", slicex.Clamp(15, 0, 10))
	d.print("join_map:", mapx.JoinMapDefault(map[string]int{"b": 2, "a": 1}))
}

func (d *demo) strings() {
	d.section("join")
	d.print("Joined: " + stringx.Join([]string{"Hello", "World"}, " "))

	d.section("split")
	d.print("Split result:")
	for _, word := range stringx.Split("Hello World Test", ' ') {
		d.print(word)
	}

	d.section("startswith and endswith")
	d.print("Starts with 'Hello':", stringx.StartsWith("Hello World", "Hello"))
	d.print("Ends with 'World':", stringx.EndsWith("Hello World", "World"))

	d.section("strip, lstrip, rstrip")
	d.print("Stripped: '" + stringx.Strip("   Hello World   ") + "'")
	d.print("LStripped: '" + stringx.LStrip("   Hello   ") + "'")
	d.print("RStripped: '" + stringx.RStrip("   Hello   ") + "'")

	d.section("isdigit_all and isalpha_all")
	d.print("Is '12345' all digits?", stringx.IsDigitAll("12345"))
	d.print("Is 'abcdef' all alphabets?", stringx.IsAlphaAll("abcdef"))

	d.section("reversed")
	d.print("Reversed list:")
	for v := range slicex.ReversedView([]int{1, 2, 3, 4}) {
		d.print(v)
	}
}

func (d *demo) files() {
	d.section("write_text_file and read_entire_file")

	dir := d.settings.Demo.WorkDir
	if dir == "" {
		dir = os.TempDir()
	}
	path := filepath.Join(dir, "pyutils-demo-"+uuid.NewString()+".txt")

	if !filex.WriteTextFile(path, "Hello, File!") {
		d.print(d.styles.fail.Render("could not write " + path))
		return
	}
	if !d.keep {
		defer func() {
			if err := os.Remove(path); err != nil {
				d.logger.DebugWithErr("demo cleanup failed", err, log.String("path", path))
			}
		}()
	}

	if content, ok := filex.ReadEntireFile(path); ok {
		d.print("File content: " + content)
	}
	d.print("File exists:", d.styles.ok.Render(stringx.Str(filex.FileExists(path))))
	if d.keep {
		d.print(d.styles.label.Render("Kept"), path)
	}
}
