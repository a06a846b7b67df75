// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ari

import (
	"fmt"

	"github.com/dtn-ari/ari/lib/arierr"
)

// Translator is a mirror-shaped map over the ARI tree: each callback
// produces an output node from an input node. A nil callback falls
// back to a structural copy of that node's own fields; container
// recursion always happens regardless of which callbacks are set.
type Translator struct {
	MapObjPath func(in *ObjPath, userData any) (ObjPath, error)
	MapLit     func(in *Literal, userData any) (Literal, error)
}

// Translate maps in into a new ARI using t, recursing into any
// container contents. userData is passed through to every callback
// unchanged.
func Translate(in *ARI, t Translator, userData any) (ARI, error) {
	if in == nil {
		return ARI{}, fmt.Errorf("translate: %w", arierr.NullArg)
	}

	if in.isRef {
		path := in.ref.ObjPath
		if t.MapObjPath != nil {
			mapped, err := t.MapObjPath(&in.ref.ObjPath, userData)
			if err != nil {
				return ARI{}, err
			}
			path = mapped
		}

		switch in.ref.Params.state {
		case ParamsAC:
			ac, err := translateAC(in.ref.Params.ac, t, userData)
			if err != nil {
				return ARI{}, err
			}
			return FromReference(NewReferenceAC(path, ac)), nil
		case ParamsAM:
			am, err := translateAM(in.ref.Params.am, t, userData)
			if err != nil {
				return ARI{}, err
			}
			return FromReference(NewReferenceAM(path, am)), nil
		default:
			return FromReference(NewReference(path)), nil
		}
	}

	lit := in.lit
	if t.MapLit != nil {
		mapped, err := t.MapLit(&in.lit, userData)
		if err != nil {
			return ARI{}, err
		}
		lit = mapped
	}

	if !in.lit.hasAriType {
		return FromLiteral(lit), nil
	}

	switch in.lit.ariType {
	case TypeAC:
		ac, _ := in.lit.AC()
		outAC, err := translateAC(ac, t, userData)
		if err != nil {
			return ARI{}, err
		}
		return FromLiteral(ACLiteral(outAC)), nil
	case TypeAM:
		am, _ := in.lit.AM()
		outAM, err := translateAM(am, t, userData)
		if err != nil {
			return ARI{}, err
		}
		return FromLiteral(AMLiteral(outAM)), nil
	case TypeTBL:
		tbl, _ := in.lit.TBL()
		outTBL, err := translateTBL(tbl, t, userData)
		if err != nil {
			return ARI{}, err
		}
		return FromLiteral(TBLLiteral(outTBL)), nil
	case TypeExecset:
		es, _ := in.lit.EXECSET()
		outES, err := translateExecset(es, t, userData)
		if err != nil {
			return ARI{}, err
		}
		return FromLiteral(EXECSETLiteral(outES)), nil
	case TypeRptset:
		rs, _ := in.lit.RPTSET()
		outRS, err := translateRptset(rs, t, userData)
		if err != nil {
			return ARI{}, err
		}
		return FromLiteral(RPTSETLiteral(outRS)), nil
	default:
		return FromLiteral(lit), nil
	}
}

func translateAC(in *AC, t Translator, userData any) (*AC, error) {
	out := make([]ARI, len(in.items))
	for i := range in.items {
		v, err := Translate(&in.items[i], t, userData)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return NewAC(out), nil
}

func translateAM(in *AM, t Translator, userData any) (*AM, error) {
	pairs := make([]AMPair, len(in.pairs))
	for i := range in.pairs {
		k, err := Translate(&in.pairs[i].Key, t, userData)
		if err != nil {
			return nil, err
		}
		v, err := Translate(&in.pairs[i].Value, t, userData)
		if err != nil {
			return nil, err
		}
		pairs[i] = AMPair{Key: k, Value: v}
	}
	return NewAM(pairs), nil
}

func translateTBL(in *TBL, t Translator, userData any) (*TBL, error) {
	out := make([]ARI, len(in.items))
	for i := range in.items {
		v, err := Translate(&in.items[i], t, userData)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return NewTBL(in.ncols, out)
}

func translateExecset(in *EXECSET, t Translator, userData any) (*EXECSET, error) {
	nonce, err := Translate(&in.Nonce, t, userData)
	if err != nil {
		return nil, err
	}
	targets := make([]ARI, len(in.Targets))
	for i := range in.Targets {
		v, err := Translate(&in.Targets[i], t, userData)
		if err != nil {
			return nil, err
		}
		targets[i] = v
	}
	return &EXECSET{Nonce: nonce, Targets: targets}, nil
}

func translateReport(in *Report, t Translator, userData any) (Report, error) {
	relTime, err := Translate(&in.RelTime, t, userData)
	if err != nil {
		return Report{}, err
	}
	source, err := Translate(&in.Source, t, userData)
	if err != nil {
		return Report{}, err
	}
	items := make([]ARI, len(in.Items))
	for i := range in.Items {
		v, err := Translate(&in.Items[i], t, userData)
		if err != nil {
			return Report{}, err
		}
		items[i] = v
	}
	return Report{RelTime: relTime, Source: source, Items: items}, nil
}

func translateRptset(in *RPTSET, t Translator, userData any) (*RPTSET, error) {
	nonce, err := Translate(&in.Nonce, t, userData)
	if err != nil {
		return nil, err
	}
	reftime, err := Translate(&in.RefTime, t, userData)
	if err != nil {
		return nil, err
	}
	reports := make([]Report, len(in.Reports))
	for i := range in.Reports {
		r, err := translateReport(&in.Reports[i], t, userData)
		if err != nil {
			return nil, err
		}
		reports[i] = r
	}
	return &RPTSET{Nonce: nonce, RefTime: reftime, Reports: reports}, nil
}
