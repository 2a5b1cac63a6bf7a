package main

import (
	"os"

	"github.com/andrewpaige1/typedeck-api/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
