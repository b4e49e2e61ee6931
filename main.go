package main

import (
	"os"

	"github.com/on-the-ground/pure_ive_go/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
