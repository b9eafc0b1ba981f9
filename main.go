package main

import (
	"os"

	"github.com/ehorn/torchcross/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
