package main

import (
	"fmt"
	"os"

	"scholartrack_backend/internals/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}
