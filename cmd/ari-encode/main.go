// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/dtn-ari/ari/internal/aridoc"
	"github.com/dtn-ari/ari/lib/ariencode"
	"github.com/dtn-ari/ari/lib/arinonce"
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
		fmt.Println("ari-encode", version.Info())
		return nil
	}

	var inputPath string
	var schemePrefix string
	var showAriType string
	var bstrForm string
	var floatForm string
	var intBase int
	var textIdentity bool
	var timeText bool
	var printNonce bool

	flagSet := pflag.NewFlagSet("ari-encode", pflag.ContinueOnError)
	flagSet.StringVar(&inputPath, "in", "-", "YAML input file describing the ARI value tree (- for stdin)")
	flagSet.StringVar(&schemePrefix, "scheme-prefix", "first", "scheme prefix policy: none, first, all")
	flagSet.StringVar(&showAriType, "show-type", "text", "type-name display policy: orig, text, int")
	flagSet.StringVar(&bstrForm, "bstr-form", "base16", "byte string rendering: raw, base16, base64url")
	flagSet.StringVar(&floatForm, "float-form", "g", "float rendering: f, g, e, a")
	flagSet.IntVar(&intBase, "int-base", 10, "base for integer literals (e.g. 10 or 16)")
	flagSet.BoolVar(&textIdentity, "text-identity", true, "leave identity-shaped text strings unquoted")
	flagSet.BoolVar(&timeText, "time-text", true, "render TP/TD literals as ISO 8601 text instead of raw seconds")
	flagSet.BoolVar(&printNonce, "nonce", false, "print a fresh random nonce literal and exit, ignoring --in")
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

	opts, err := optionsFromFlags(schemePrefix, showAriType, bstrForm, floatForm, intBase, textIdentity, timeText)
	if err != nil {
		return err
	}

	if printNonce {
		text, err := ariencode.Encode(arinonce.New(), opts)
		if err != nil {
			return fmt.Errorf("encoding nonce: %w", err)
		}
		fmt.Println(text)
		return nil
	}

	var data []byte
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

	text, err := ariencode.Encode(value, opts)
	if err != nil {
		return fmt.Errorf("encoding: %w", err)
	}

	fmt.Println(text)
	return nil
}

func optionsFromFlags(schemePrefix, showAriType, bstrForm, floatForm string, intBase int, textIdentity, timeText bool) (ariencode.Options, error) {
	opts := ariencode.DefaultOptions()
	opts.IntBase = intBase
	opts.TextIdentity = textIdentity
	opts.TimeText = timeText

	switch floatForm {
	case "f", "g", "e", "a":
		opts.FloatForm = floatForm[0]
	default:
		return opts, fmt.Errorf("invalid --float-form %q", floatForm)
	}

	switch schemePrefix {
	case "none":
		opts.SchemePrefix = ariencode.SchemeNone
	case "first":
		opts.SchemePrefix = ariencode.SchemeFirst
	case "all":
		opts.SchemePrefix = ariencode.SchemeAll
	default:
		return opts, fmt.Errorf("invalid --scheme-prefix %q", schemePrefix)
	}

	switch showAriType {
	case "orig":
		opts.ShowAriType = ariencode.ShowOrig
	case "text":
		opts.ShowAriType = ariencode.ShowText
	case "int":
		opts.ShowAriType = ariencode.ShowInt
	default:
		return opts, fmt.Errorf("invalid --show-type %q", showAriType)
	}

	switch bstrForm {
	case "raw":
		opts.BstrForm = ariencode.BstrRaw
	case "base16":
		opts.BstrForm = ariencode.BstrBase16
	case "base64url":
		opts.BstrForm = ariencode.BstrBase64URL
	default:
		return opts, fmt.Errorf("invalid --bstr-form %q", bstrForm)
	}

	return opts, nil
}
