package main

import (
	"fmt"
	"os"

	"dataquality/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "dqctl:", err)
		os.Exit(1)
	}
}
