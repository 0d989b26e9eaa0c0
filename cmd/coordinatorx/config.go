package main

import (
	"context"
	_ "embed"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/BrandonKowalski/coordinatorx/pkg/coordinatorx"
)

//go:embed config.toml
var configContent string

func runConfigGenerate(runCtx context.Context, args []string) error {
	var outfile string
	fs := flag.NewFlagSet("config-gen", flag.ContinueOnError)
	fs.StringVar(&outfile, "out", "./coordinatorx.toml", "output config file path")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("main: invalid flags. %w", err)
	}
	if _, err := os.Stat(outfile); !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("main: config file already exists: %s", outfile)
	}
	f, err := os.OpenFile(outfile, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("main: open config file: %w", err)
	}
	defer f.Close()
	if _, err := f.WriteString(configContent); err != nil {
		return fmt.Errorf("main: write config content: %w", err)
	}
	coordinatorx.GetLogger().Info("Generated config file", "path", outfile)
	return nil
}

func runConfigVerify(runCtx context.Context, args []string) error {
	options, err := parseOptions("config-verify", args, nil)
	if err != nil {
		return err
	}
	coordinatorx.Init(options)
	coordinatorx.GetLogger().Info("Config verified", "loop", options.Loop.Name, "log_level", options.LogLevel)
	return nil
}

// parseOptions parses the shared -config flag plus any extra flags and loads
// the options file.
func parseOptions(name string, args []string, extra func(fs *flag.FlagSet)) (coordinatorx.Options, error) {
	var path string
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "config file path")
	if extra != nil {
		extra(fs)
	}
	if err := fs.Parse(args); err != nil {
		return coordinatorx.Options{}, fmt.Errorf("main: invalid flags. %w", err)
	}
	return coordinatorx.LoadOptions(path)
}
