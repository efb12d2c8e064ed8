package main

import (
	"os"

	"github.com/abhisek/topiq/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
