package main

import (
	"os"

	"github.com/ordanet/tokenize/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
