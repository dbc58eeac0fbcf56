package main

import (
	"os"

	"github.com/abhisek/fractiz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
