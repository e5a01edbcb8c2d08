package main

import (
	"os"

	"github.com/akrishn/studyhub/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
