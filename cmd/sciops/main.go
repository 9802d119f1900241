package main

import (
	"os"

	"github.com/msto63/sciops/cmd/sciops/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
