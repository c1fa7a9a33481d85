package main

import (
	"fmt"
	"os"
	"rosterFixture/internal/config"
	"rosterFixture/internal/generator"
	"rosterFixture/internal/logger"

	"github.com/alecthomas/kingpin"
)

func main() {
	configPath := kingpin.Flag("config", "Config file").Default("configs/config.toml").String()
	cmdGenerate := kingpin.Command("generate", "Write the sample roster workbook").Default()
	output := cmdGenerate.Flag("output", "Output file, overrides the config").String()
	cmdInitConfig := kingpin.Command("init-config", "Write the default config file")
	cmd := kingpin.Parse()

	switch cmd {
	case cmdGenerate.FullCommand():
		runGenerate(*configPath, *output)
	case cmdInitConfig.FullCommand():
		runInitConfig(*configPath)
	}
}

func runGenerate(configPath, output string) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error("Failed to load config", "error", err)
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	closer, err := logger.Init(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		fmt.Printf("Error initialising log: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	if output != "" {
		cfg.Output.File = output
	}

	logger.Info("Starting generate operation", "output", cfg.Output.File, "sheet", cfg.Output.Sheet)
	err = generator.Run(os.Stdout, generator.New(generator.OptionsFromConfig(cfg.Output)))
	if err != nil {
		logger.Error("Generate operation failed", "error", err)
		closer.Close()
		os.Exit(1)
	}
}

func runInitConfig(configPath string) {
	if _, err := os.Stat(configPath); err == nil {
		fmt.Printf("Config file already exists: %s\n", configPath)
		return
	}

	if err := config.SaveConfig(configPath, config.Default()); err != nil {
		logger.Error("Failed to write config", "error", err)
		fmt.Printf("Error writing config: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✓ Config written to %s\n", configPath)
}
