package main

import (
	"os"

	"github.com/dipakw/inside/cmd/inside/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
