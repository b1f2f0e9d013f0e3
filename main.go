package main

import (
	"os"

	"github.com/kurera-app/kurera/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
