// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/dtn-ari/ari/lib/ari"
	"github.com/dtn-ari/ari/lib/ariencode"
)

// treeLine is one row of the flattened tree view.
type treeLine struct {
	depth int
	label string
}

// buildTree flattens root into a depth-annotated line list, one line
// per node, in pre-order: containers before their contents, keys
// immediately before their values. AM pairs appear in the AM's stored
// order, which can differ from the key-sorted order of the canonical
// text.
func buildTree(root ari.ARI) ([]treeLine, error) {
	opts := ariencode.DefaultOptions()
	var lines []treeLine
	var walk func(a ari.ARI, depth int, label string) error

	emit := func(a ari.ARI, depth int, label string) error {
		text, err := ariencode.Encode(a, opts)
		if err != nil {
			return fmt.Errorf("encoding node: %w", err)
		}
		if label != "" {
			text = label + text
		}
		lines = append(lines, treeLine{depth: depth, label: text})
		return nil
	}

	walk = func(a ari.ARI, depth int, label string) error {
		if err := emit(a, depth, label); err != nil {
			return err
		}
		if ref, isRef := a.Reference(); isRef {
			switch ref.Params.State() {
			case ari.ParamsAC:
				ac, _ := ref.Params.AC()
				for i, item := range ac.Items() {
					if err := walk(item, depth+1, fmt.Sprintf("[%d] ", i)); err != nil {
						return err
					}
				}
			case ari.ParamsAM:
				am, _ := ref.Params.AM()
				for _, pair := range am.Pairs() {
					if err := walk(pair.Key, depth+1, "key: "); err != nil {
						return err
					}
					if err := walk(pair.Value, depth+1, "value: "); err != nil {
						return err
					}
				}
			}
			return nil
		}

		lit, _ := a.Literal()
		if lit.PrimType() != ari.PrimOther {
			return nil
		}
		switch lit.AriType() {
		case ari.TypeAC:
			ac, _ := lit.AC()
			for i, item := range ac.Items() {
				if err := walk(item, depth+1, fmt.Sprintf("[%d] ", i)); err != nil {
					return err
				}
			}
		case ari.TypeAM:
			am, _ := lit.AM()
			for _, pair := range am.Pairs() {
				if err := walk(pair.Key, depth+1, "key: "); err != nil {
					return err
				}
				if err := walk(pair.Value, depth+1, "value: "); err != nil {
					return err
				}
			}
		case ari.TypeTBL:
			tbl, _ := lit.TBL()
			ncols := tbl.NCols()
			if ncols == 0 {
				ncols = 1
			}
			for i, item := range tbl.Items() {
				row, col := i/ncols, i%ncols
				if err := walk(item, depth+1, fmt.Sprintf("[%d,%d] ", row, col)); err != nil {
					return err
				}
			}
		case ari.TypeExecset:
			es, _ := lit.EXECSET()
			if err := walk(es.Nonce, depth+1, "nonce: "); err != nil {
				return err
			}
			for i, target := range es.Targets {
				if err := walk(target, depth+1, fmt.Sprintf("target[%d] ", i)); err != nil {
					return err
				}
			}
		case ari.TypeRptset:
			rs, _ := lit.RPTSET()
			if err := walk(rs.Nonce, depth+1, "nonce: "); err != nil {
				return err
			}
			if err := walk(rs.RefTime, depth+1, "ref-time: "); err != nil {
				return err
			}
			for i, report := range rs.Reports {
				if err := walk(report.RelTime, depth+1, fmt.Sprintf("report[%d].rel-time: ", i)); err != nil {
					return err
				}
				if err := walk(report.Source, depth+1, fmt.Sprintf("report[%d].source: ", i)); err != nil {
					return err
				}
				for j, item := range report.Items {
					if err := walk(item, depth+2, fmt.Sprintf("item[%d] ", j)); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}

	if err := walk(root, 0, ""); err != nil {
		return nil, err
	}
	return lines, nil
}
