// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package aridoc decodes a compact YAML description of an ARI value
// tree into lib/ari values. It backs the --in flag of both ari-encode
// and ari-inspect, so both tools accept the same
// hand-authorable document shape.
package aridoc

import (
	"encoding/hex"
	"fmt"

	"github.com/dtn-ari/ari/lib/ari"
	"github.com/dtn-ari/ari/lib/aritext"
	"github.com/dtn-ari/ari/lib/arinonce"
)

// Node is the YAML shape accepted by both ari-encode and ari-inspect.
// Exactly one of Ref or Lit must be set at each level.
type Node struct {
	Ref *RefNode `yaml:"ref,omitempty"`
	Lit *LitNode `yaml:"lit,omitempty"`
}

// IdsegNode is the YAML shape of an [ari.Idseg]. An empty IdsegNode
// decodes to the NULL form.
type IdsegNode struct {
	Text *string `yaml:"text,omitempty"`
	Int  *int64  `yaml:"int,omitempty"`
}

// RefNode is the YAML shape of an [ari.Reference].
type RefNode struct {
	Ns      IdsegNode `yaml:"ns"`
	Type    IdsegNode `yaml:"type"`
	Obj     IdsegNode `yaml:"obj"`
	AriType string    `yaml:"ari_type,omitempty"`
	Params  *struct {
		AC []Node       `yaml:"ac,omitempty"`
		AM []AMPairNode `yaml:"am,omitempty"`
	} `yaml:"params,omitempty"`
}

// AMPairNode is one key/value entry of an AM literal or AM actual
// parameter list.
type AMPairNode struct {
	Key   Node `yaml:"key"`
	Value Node `yaml:"value"`
}

// LitNode is the YAML shape of an [ari.Literal]. Exactly one value
// field should be set; AriType is optional on every alternative.
type LitNode struct {
	AriType string `yaml:"ari_type,omitempty"`

	Undefined bool `yaml:"undefined,omitempty"`
	Null      bool `yaml:"null,omitempty"`

	Bool    *bool    `yaml:"bool,omitempty"`
	Int     *int64   `yaml:"int,omitempty"`
	Uint    *uint64  `yaml:"uint,omitempty"`
	Float   *float64 `yaml:"float,omitempty"`
	Tstr    *string  `yaml:"tstr,omitempty"`
	BstrHex *string  `yaml:"bstr_hex,omitempty"`

	AC []Node       `yaml:"ac,omitempty"`
	AM []AMPairNode `yaml:"am,omitempty"`

	TBL *struct {
		NCols int    `yaml:"ncols"`
		Items []Node `yaml:"items"`
	} `yaml:"tbl,omitempty"`

	Timespec *TimespecNode `yaml:"timespec,omitempty"`
	Execset  *ExecsetNode  `yaml:"execset,omitempty"`
	Rptset   *RptsetNode   `yaml:"rptset,omitempty"`
}

// TimespecNode is the YAML shape of a TIMESPEC literal: a DTN-epoch
// seconds offset plus an optional nanosecond remainder.
type TimespecNode struct {
	Seconds int64  `yaml:"seconds"`
	Nanos   uint32 `yaml:"nanos,omitempty"`
}

// ExecsetNode is the YAML shape of an EXECSET literal. Set NonceRandom
// instead of Nonce to have a fresh random nonce generated at build
// time rather than spelling one out by hand.
type ExecsetNode struct {
	Nonce       *Node  `yaml:"nonce,omitempty"`
	NonceRandom bool   `yaml:"nonce_random,omitempty"`
	Targets     []Node `yaml:"targets"`
}

// RptsetNode is the YAML shape of an RPTSET literal. Set NonceRandom
// instead of Nonce to have a fresh random nonce generated at build
// time rather than spelling one out by hand.
type RptsetNode struct {
	Nonce       *Node        `yaml:"nonce,omitempty"`
	NonceRandom bool         `yaml:"nonce_random,omitempty"`
	RefTime     Node         `yaml:"ref_time"`
	Reports     []ReportNode `yaml:"reports"`
}

// ReportNode is one entry of an RptsetNode's report list.
type ReportNode struct {
	RelTime Node   `yaml:"rel_time"`
	Source  Node   `yaml:"source"`
	Items   []Node `yaml:"items"`
}

func nonceFromNode(nonce *Node, random bool) (ari.ARI, error) {
	switch {
	case random:
		return arinonce.New(), nil
	case nonce != nil:
		return ARIFromNode(*nonce)
	default:
		return ari.ARI{}, fmt.Errorf("aridoc: neither nonce nor nonce_random is set")
	}
}

func reportFromNode(n ReportNode) (ari.Report, error) {
	relTime, err := ARIFromNode(n.RelTime)
	if err != nil {
		return ari.Report{}, fmt.Errorf("aridoc: report rel_time: %w", err)
	}
	source, err := ARIFromNode(n.Source)
	if err != nil {
		return ari.Report{}, fmt.Errorf("aridoc: report source: %w", err)
	}
	items, err := ariSliceFromNodes(n.Items)
	if err != nil {
		return ari.Report{}, fmt.Errorf("aridoc: report items: %w", err)
	}
	return ari.Report{RelTime: relTime, Source: source, Items: items}, nil
}

func idsegFromNode(n IdsegNode) ari.Idseg {
	switch {
	case n.Text != nil:
		return ari.TextIdseg(*n.Text)
	case n.Int != nil:
		return ari.IntIdseg(*n.Int)
	default:
		return ari.NullIdseg()
	}
}

// ARIFromNode converts a decoded Node into an [ari.ARI].
func ARIFromNode(n Node) (ari.ARI, error) {
	switch {
	case n.Ref != nil:
		return referenceFromNode(*n.Ref)
	case n.Lit != nil:
		return literalFromNode(*n.Lit)
	default:
		return ari.ARI{}, fmt.Errorf("aridoc: node has neither ref nor lit set")
	}
}

func referenceFromNode(n RefNode) (ari.ARI, error) {
	path := ari.ObjPath{
		NsID:   idsegFromNode(n.Ns),
		TypeID: idsegFromNode(n.Type),
		ObjID:  idsegFromNode(n.Obj),
	}
	if n.AriType != "" {
		code, ok := ari.TypeFromName(n.AriType)
		if !ok {
			return ari.ARI{}, fmt.Errorf("aridoc: unknown ari_type %q", n.AriType)
		}
		path.HasAriType = true
		path.AriType = code
	}

	if n.Params == nil {
		return ari.FromReference(ari.NewReference(path)), nil
	}
	if len(n.Params.AC) > 0 {
		items, err := ariSliceFromNodes(n.Params.AC)
		if err != nil {
			return ari.ARI{}, err
		}
		return ari.FromReference(ari.NewReferenceAC(path, ari.NewAC(items))), nil
	}
	if len(n.Params.AM) > 0 {
		pairs, err := amPairsFromNodes(n.Params.AM)
		if err != nil {
			return ari.ARI{}, err
		}
		return ari.FromReference(ari.NewReferenceAM(path, ari.NewAM(pairs))), nil
	}
	return ari.FromReference(ari.NewReference(path)), nil
}

func ariSliceFromNodes(nodes []Node) ([]ari.ARI, error) {
	out := make([]ari.ARI, 0, len(nodes))
	for i, n := range nodes {
		a, err := ARIFromNode(n)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		out = append(out, a)
	}
	return out, nil
}

func amPairsFromNodes(nodes []AMPairNode) ([]ari.AMPair, error) {
	out := make([]ari.AMPair, 0, len(nodes))
	for i, n := range nodes {
		key, err := ARIFromNode(n.Key)
		if err != nil {
			return nil, fmt.Errorf("pair %d key: %w", i, err)
		}
		value, err := ARIFromNode(n.Value)
		if err != nil {
			return nil, fmt.Errorf("pair %d value: %w", i, err)
		}
		out = append(out, ari.AMPair{Key: key, Value: value})
	}
	return out, nil
}

func literalFromNode(n LitNode) (ari.ARI, error) {
	lit, err := literalValueFromNode(n)
	if err != nil {
		return ari.ARI{}, err
	}
	if n.AriType != "" {
		code, ok := ari.TypeFromName(n.AriType)
		if !ok {
			return ari.ARI{}, fmt.Errorf("aridoc: unknown ari_type %q", n.AriType)
		}
		lit = lit.WithType(code)
	}
	return ari.FromLiteral(lit), nil
}

func literalValueFromNode(n LitNode) (ari.Literal, error) {
	switch {
	case n.Undefined:
		return ari.Undefined(), nil
	case n.Null:
		return ari.NullLiteral(), nil
	case n.Bool != nil:
		return ari.BoolLiteral(*n.Bool), nil
	case n.Int != nil:
		return ari.Int64Literal(*n.Int), nil
	case n.Uint != nil:
		return ari.Uint64Literal(*n.Uint), nil
	case n.Float != nil:
		return ari.Float64Literal(*n.Float), nil
	case n.Tstr != nil:
		return ari.TstrLiteral(*n.Tstr), nil
	case n.BstrHex != nil:
		data, err := hex.DecodeString(*n.BstrHex)
		if err != nil {
			return ari.Literal{}, fmt.Errorf("aridoc: bstr_hex: %w", err)
		}
		return ari.BstrLiteral(data), nil
	case n.AC != nil:
		items, err := ariSliceFromNodes(n.AC)
		if err != nil {
			return ari.Literal{}, err
		}
		return ari.ACLiteral(ari.NewAC(items)), nil
	case n.AM != nil:
		pairs, err := amPairsFromNodes(n.AM)
		if err != nil {
			return ari.Literal{}, err
		}
		return ari.AMLiteral(ari.NewAM(pairs)), nil
	case n.TBL != nil:
		items, err := ariSliceFromNodes(n.TBL.Items)
		if err != nil {
			return ari.Literal{}, err
		}
		tbl, err := ari.NewTBL(n.TBL.NCols, items)
		if err != nil {
			return ari.Literal{}, err
		}
		return ari.TBLLiteral(tbl), nil
	case n.Timespec != nil:
		return ari.TimespecLiteral(aritext.Timespec{
			Seconds: n.Timespec.Seconds,
			Nanos:   n.Timespec.Nanos,
		}), nil
	case n.Execset != nil:
		nonce, err := nonceFromNode(n.Execset.Nonce, n.Execset.NonceRandom)
		if err != nil {
			return ari.Literal{}, fmt.Errorf("aridoc: execset: %w", err)
		}
		targets, err := ariSliceFromNodes(n.Execset.Targets)
		if err != nil {
			return ari.Literal{}, fmt.Errorf("aridoc: execset targets: %w", err)
		}
		return ari.EXECSETLiteral(&ari.EXECSET{Nonce: nonce, Targets: targets}), nil
	case n.Rptset != nil:
		nonce, err := nonceFromNode(n.Rptset.Nonce, n.Rptset.NonceRandom)
		if err != nil {
			return ari.Literal{}, fmt.Errorf("aridoc: rptset: %w", err)
		}
		refTime, err := ARIFromNode(n.Rptset.RefTime)
		if err != nil {
			return ari.Literal{}, fmt.Errorf("aridoc: rptset ref_time: %w", err)
		}
		reports := make([]ari.Report, 0, len(n.Rptset.Reports))
		for i, rn := range n.Rptset.Reports {
			report, err := reportFromNode(rn)
			if err != nil {
				return ari.Literal{}, fmt.Errorf("aridoc: rptset report %d: %w", i, err)
			}
			reports = append(reports, report)
		}
		return ari.RPTSETLiteral(&ari.RPTSET{Nonce: nonce, RefTime: refTime, Reports: reports}), nil
	default:
		return ari.Literal{}, fmt.Errorf("aridoc: literal node has no recognized value field set")
	}
}
