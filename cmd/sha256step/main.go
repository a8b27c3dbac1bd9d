package main

import (
	"os"

	"github.com/zeebo/sha256step/cmd/sha256step/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
