package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Stderr))
}

func run(stderr io.Writer) int {
	root := newRootCommand()
	err := root.Execute()
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
	}
	return exitCodeFor(err)
}
