package main

import (
	"os"

	"github.com/phillyhomelab/peco-outages/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
