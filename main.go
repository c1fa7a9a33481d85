package main

import (
	"os"
	"rosterFixture/internal/generator"
	"rosterFixture/internal/logger"
)

func main() {
	err := generator.Run(os.Stdout, generator.New(generator.DefaultOptions()))
	if err != nil {
		logger.Error("Failed to generate sample roster", "error", err)
		os.Exit(1)
	}
}
