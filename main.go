package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/profile"
	"go-simpler.org/env"

	"keyforge/internal/config"
	"keyforge/internal/keywriter"
	"keyforge/internal/logger"
)

const version = "0.3.1"

const defaultConfigPath = "config.yaml"

func main() {
	configPath := defaultConfigPath
	if len(os.Args) == 2 {
		switch os.Args[1] {
		case "version":
			fmt.Println(version)
			return
		case "help":
			printHelp()
			return
		case "env":
			env.Usage(&config.Config{}, os.Stdout, nil)
			return
		default:
			configPath = os.Args[1]
		}
	} else if len(os.Args) > 2 {
		printHelp()
		os.Exit(2)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("%v", err))
		os.Exit(2)
	}

	log, closeLog, err := logger.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("opening log file: %v", err))
		os.Exit(1)
	}
	defer closeLog()
	slog.SetDefault(log)

	if os.Getenv("PPROF") == "true" {
		defer profile.Start(profile.MemProfile).Stop()
	}

	if err := keywriter.New(cfg, log).Run(); err != nil {
		log.Error("generation failed", "error", err)
		fmt.Fprintln(os.Stderr, color.RedString("%v", err))
		os.Exit(1)
	}
	fmt.Println(color.GreenString("Keys generated and saved in %s", cfg.OutputFile))
}

func printHelp() {
	fmt.Printf(`usage: %s [CONFIG_FILE]

Generates a file with every fixed-width uppercase hex key in the
configured range, one per line. Settings are read from %s in the
working directory, or from CONFIG_FILE when given. There are no flags.

commands:

  - print this help message

      %s help

  - print version info

      %s version

  - list the environment variables that override the config file

      %s env

config file keys: output_file, key_length, start, end, num_keys,
log_file, log_level, quiet. start and end are hex literals.
`, os.Args[0], defaultConfigPath, os.Args[0], os.Args[0], os.Args[0])
}
