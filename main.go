package main

import (
	"bsteg/internal/cli"
	"os"
)

func main() {
	if err := cli.RootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
