package consolex_test

import (
	"os"
	"strings"

	"github.com/msto63/pyutils/utils/consolex"
)

func ExampleConsole_Print() {
	c := consolex.New(os.Stdout, nil)
	c.Print("Hello", "World", 42, 3.14, true)
	c.Print()
	c.Print("done")
	// Output:
	// Hello World 42 3.14 true
	//
	// done
}

func ExampleConsole_Input() {
	c := consolex.New(os.Stdout, strings.NewReader("Alice\r\n"))
	name := c.Input("Name:")
	c.Print()
	c.Print("Hello,", name)
	// Output:
	// Name:
	// Hello, Alice
}
