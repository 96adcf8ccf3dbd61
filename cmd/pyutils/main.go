package main

import (
	"os"

	"github.com/msto63/pyutils/cmd/pyutils/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
