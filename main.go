package main

import (
	"os"

	"github.com/dkazmin/lookbook/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
