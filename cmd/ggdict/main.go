package main

import (
	"fmt"
	"os"

	"github.com/graph-guard/ggdict/pkg/cli"
)

func main() {
	w := os.Stdout
	switch c := cli.Parse(w, os.Args).(type) {
	case cli.CommandBench:
		bench(w, c)
	case cli.CommandLoad:
		load(w, c)
	case cli.CommandSelect:
		printSelection(w)
	default:
		if c != nil {
			panic(fmt.Errorf("unexpected command: %#v", c))
		}
	}
}
