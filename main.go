package main

import (
	"os"

	"github.com/vitalvision/vitalvision/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
