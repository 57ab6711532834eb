package main

import (
	"os"

	"github.com/edunsouza/meeting-workbook/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
