package main

import (
	"os"

	"github.com/santgross/BIOFIT-EXPERT/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
