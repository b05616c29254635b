package main

import (
	"os"

	"github.com/weathermux/weathermux/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
