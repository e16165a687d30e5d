package main

import (
	"fmt"
	"os"

	"github.com/mitchellh/cli"
	"github.com/sgostarter/i/l"
)

const version = "0.1.0"

func main() {
	os.Exit(realMain(os.Args[1:]))
}

func realMain(args []string) int {
	ui := &cli.BasicUi{
		Reader:      os.Stdin,
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
	}

	logger := l.NewNopLoggerWrapper()
	if os.Getenv("FEATHERMAKER_LOG") != "" {
		logger = l.NewConsoleLoggerWrapper()
	}

	c := cli.NewCLI("feathermaker", version)
	c.Args = args
	c.Commands = commands(ui, logger)

	exitCode, err := c.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error executing CLI: %s\n", err.Error())

		return 1
	}

	return exitCode
}

func commands(ui cli.Ui, logger l.Wrapper) map[string]cli.CommandFactory {
	meta := Meta{Ui: ui, Logger: logger}

	return map[string]cli.CommandFactory{
		"resolve": func() (cli.Command, error) {
			return &ResolveCommand{Meta: meta}, nil
		},
		"build": func() (cli.Command, error) {
			return &BuildCommand{Meta: meta}, nil
		},
		"presets": func() (cli.Command, error) {
			return &PresetsCommand{Meta: meta}, nil
		},
		"presets list": func() (cli.Command, error) {
			return &PresetsListCommand{Meta: meta}, nil
		},
		"presets save": func() (cli.Command, error) {
			return &PresetsSaveCommand{Meta: meta}, nil
		},
		"presets show": func() (cli.Command, error) {
			return &PresetsShowCommand{Meta: meta}, nil
		},
	}
}
