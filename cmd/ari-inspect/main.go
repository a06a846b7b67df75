// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// ari-inspect is a terminal tree browser for ARI value trees. It
// loads the same YAML document shape ari-encode accepts and lets the
// user navigate the decoded structure interactively, with a fuzzy
// filter over the flattened node list for jumping to a deeply nested
// value by typing a fragment of its rendered text.
package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/dtn-ari/ari/internal/aridoc"
	"github.com/dtn-ari/ari/lib/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		fmt.Println("ari-inspect", version.Info())
		return nil
	}

	var inputPath string

	flagSet := pflag.NewFlagSet("ari-inspect", pflag.ContinueOnError)
	flagSet.StringVarP(&inputPath, "in", "i", "-", "YAML file describing the ARI value tree (- for stdin)")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			flagSet.PrintDefaults()
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		flagSet.PrintDefaults()
		return nil
	}

	var data []byte
	var err error
	if inputPath == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(inputPath)
	}
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	var top aridoc.Node
	if err := yaml.Unmarshal(data, &top); err != nil {
		return fmt.Errorf("parsing YAML: %w", err)
	}

	value, err := aridoc.ARIFromNode(top)
	if err != nil {
		return fmt.Errorf("building ARI from input: %w", err)
	}

	lines, err := buildTree(value)
	if err != nil {
		return fmt.Errorf("flattening tree: %w", err)
	}

	program := tea.NewProgram(newModel(lines, inputPath))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
