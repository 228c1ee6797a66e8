// Package main provides the entry point for the farmfilter CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/datatrails/go-datatrails-common/logger"

	"github.com/forestrie/go-farmfilter/cmd/farmfilter/commands"
)

func main() {
	err := commands.NewRootCommand().Execute()
	logger.OnExit()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
