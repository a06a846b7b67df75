// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package aricbor

import (
	"fmt"

	"github.com/dtn-ari/ari/lib/ari"
	"github.com/dtn-ari/ari/lib/arierr"
	"github.com/dtn-ari/ari/lib/aritext"
)

type wireIdseg struct {
	Form int8   `cbor:"1,keyasint"`
	Text string `cbor:"2,keyasint,omitempty"`
	Int  int64  `cbor:"3,keyasint,omitempty"`
}

type wireObjPath struct {
	NsID       wireIdseg `cbor:"1,keyasint"`
	TypeID     wireIdseg `cbor:"2,keyasint"`
	ObjID      wireIdseg `cbor:"3,keyasint"`
	HasAriType bool      `cbor:"4,keyasint,omitempty"`
	AriType    int32     `cbor:"5,keyasint,omitempty"`
}

type wireAMPair struct {
	Key   wireARI `cbor:"1,keyasint"`
	Value wireARI `cbor:"2,keyasint"`
}

type wireParams struct {
	State int8         `cbor:"1,keyasint"`
	AC    []wireARI    `cbor:"2,keyasint,omitempty"`
	AM    []wireAMPair `cbor:"3,keyasint,omitempty"`
}

type wireReport struct {
	RelTime wireARI   `cbor:"1,keyasint"`
	Source  wireARI   `cbor:"2,keyasint"`
	Items   []wireARI `cbor:"3,keyasint,omitempty"`
}

type wireLit struct {
	PrimType    int8         `cbor:"1,keyasint"`
	Bool        bool         `cbor:"2,keyasint,omitempty"`
	Uint64      uint64       `cbor:"3,keyasint,omitempty"`
	Int64       int64        `cbor:"4,keyasint,omitempty"`
	Float64     float64      `cbor:"5,keyasint,omitempty"`
	Bytes       []byte       `cbor:"6,keyasint,omitempty"`
	Seconds     int64        `cbor:"7,keyasint,omitempty"`
	Nanos       uint32       `cbor:"8,keyasint,omitempty"`
	HasAriType  bool         `cbor:"9,keyasint,omitempty"`
	AriType     int32        `cbor:"10,keyasint,omitempty"`
	ACItems     []wireARI    `cbor:"11,keyasint,omitempty"`
	AMPairs     []wireAMPair `cbor:"12,keyasint,omitempty"`
	TBLNCols    int          `cbor:"13,keyasint,omitempty"`
	TBLItems    []wireARI    `cbor:"14,keyasint,omitempty"`
	ExecNonce   *wireARI     `cbor:"15,keyasint,omitempty"`
	ExecTargets []wireARI    `cbor:"16,keyasint,omitempty"`
	RptNonce    *wireARI     `cbor:"17,keyasint,omitempty"`
	RptRefTime  *wireARI     `cbor:"18,keyasint,omitempty"`
	Reports     []wireReport `cbor:"19,keyasint,omitempty"`
}

type wireRef struct {
	ObjPath wireObjPath `cbor:"1,keyasint"`
	Params  wireParams  `cbor:"2,keyasint"`
}

type wireARI struct {
	IsRef bool     `cbor:"1,keyasint,omitempty"`
	Ref   *wireRef `cbor:"2,keyasint,omitempty"`
	Lit   *wireLit `cbor:"3,keyasint,omitempty"`
}

func idsegToWire(s ari.Idseg) wireIdseg {
	switch s.Form() {
	case ari.IdsegText:
		text, _ := s.Text()
		return wireIdseg{Form: int8(ari.IdsegText), Text: text}
	case ari.IdsegInt:
		v, _ := s.Int()
		return wireIdseg{Form: int8(ari.IdsegInt), Int: v}
	default:
		return wireIdseg{Form: int8(ari.IdsegNull)}
	}
}

func idsegFromWire(w wireIdseg) ari.Idseg {
	switch ari.IdsegForm(w.Form) {
	case ari.IdsegText:
		return ari.TextIdseg(w.Text)
	case ari.IdsegInt:
		return ari.IntIdseg(w.Int)
	default:
		return ari.NullIdseg()
	}
}

func objPathToWire(p ari.ObjPath) wireObjPath {
	return wireObjPath{
		NsID:       idsegToWire(p.NsID),
		TypeID:     idsegToWire(p.TypeID),
		ObjID:      idsegToWire(p.ObjID),
		HasAriType: p.HasAriType,
		AriType:    int32(p.AriType),
	}
}

func objPathFromWire(w wireObjPath) ari.ObjPath {
	return ari.ObjPath{
		NsID:       idsegFromWire(w.NsID),
		TypeID:     idsegFromWire(w.TypeID),
		ObjID:      idsegFromWire(w.ObjID),
		HasAriType: w.HasAriType,
		AriType:    ari.TypeCode(w.AriType),
	}
}

func ariToWire(a ari.ARI) wireARI {
	if ref, ok := a.Reference(); ok {
		params := wireParams{State: int8(ref.Params.State())}
		switch ref.Params.State() {
		case ari.ParamsAC:
			ac, _ := ref.Params.AC()
			params.AC = acToWire(ac)
		case ari.ParamsAM:
			am, _ := ref.Params.AM()
			params.AM = amToWire(am)
		}
		return wireARI{IsRef: true, Ref: &wireRef{
			ObjPath: objPathToWire(ref.ObjPath),
			Params:  params,
		}}
	}

	lit, _ := a.Literal()
	w := wireLit{
		PrimType:   int8(lit.PrimType()),
		HasAriType: lit.HasAriType(),
		AriType:    int32(lit.AriType()),
	}
	switch lit.PrimType() {
	case ari.PrimBool:
		w.Bool = lit.BoolValue()
	case ari.PrimUint64:
		w.Uint64 = lit.Uint64Value()
	case ari.PrimInt64:
		w.Int64 = lit.Int64Value()
	case ari.PrimFloat64:
		w.Float64 = lit.Float64Value()
	case ari.PrimTstr, ari.PrimBstr:
		w.Bytes = lit.BytesValue()
	case ari.PrimTimespec:
		ts := lit.TimeValue()
		w.Seconds, w.Nanos = ts.Seconds, ts.Nanos
	}
	if lit.HasAriType() {
		switch lit.AriType() {
		case ari.TypeAC:
			ac, _ := lit.AC()
			w.ACItems = acToWire(ac)
		case ari.TypeAM:
			am, _ := lit.AM()
			w.AMPairs = amToWire(am)
		case ari.TypeTBL:
			tbl, _ := lit.TBL()
			w.TBLNCols = tbl.NCols()
			w.TBLItems = arisToWire(tbl.Items())
		case ari.TypeExecset:
			es, _ := lit.EXECSET()
			nonce := ariToWire(es.Nonce)
			w.ExecNonce = &nonce
			w.ExecTargets = arisToWire(es.Targets)
		case ari.TypeRptset:
			rs, _ := lit.RPTSET()
			nonce := ariToWire(rs.Nonce)
			reftime := ariToWire(rs.RefTime)
			w.RptNonce = &nonce
			w.RptRefTime = &reftime
			w.Reports = make([]wireReport, len(rs.Reports))
			for i, r := range rs.Reports {
				w.Reports[i] = wireReport{
					RelTime: ariToWire(r.RelTime),
					Source:  ariToWire(r.Source),
					Items:   arisToWire(r.Items),
				}
			}
		}
	}
	return wireARI{Lit: &w}
}

func arisToWire(items []ari.ARI) []wireARI {
	out := make([]wireARI, len(items))
	for i, item := range items {
		out[i] = ariToWire(item)
	}
	return out
}

func acToWire(ac *ari.AC) []wireARI { return arisToWire(ac.Items()) }

func amToWire(am *ari.AM) []wireAMPair {
	pairs := am.Pairs()
	out := make([]wireAMPair, len(pairs))
	for i, p := range pairs {
		out[i] = wireAMPair{Key: ariToWire(p.Key), Value: ariToWire(p.Value)}
	}
	return out
}

func ariFromWire(w wireARI) (ari.ARI, error) {
	if w.Ref != nil {
		path := objPathFromWire(w.Ref.ObjPath)
		switch ari.ParamsState(w.Ref.Params.State) {
		case ari.ParamsAC:
			ac, err := acFromWire(w.Ref.Params.AC)
			if err != nil {
				return ari.ARI{}, err
			}
			return ari.FromReference(ari.NewReferenceAC(path, ac)), nil
		case ari.ParamsAM:
			am, err := amFromWire(w.Ref.Params.AM)
			if err != nil {
				return ari.ARI{}, err
			}
			return ari.FromReference(ari.NewReferenceAM(path, am)), nil
		default:
			return ari.FromReference(ari.NewReference(path)), nil
		}
	}

	if w.Lit == nil {
		return ari.ARI{}, fmt.Errorf("aricbor: wire ARI has neither ref nor lit: %w", arierr.Malformed)
	}
	l := w.Lit

	if l.HasAriType {
		switch ari.TypeCode(l.AriType) {
		case ari.TypeAC:
			ac, err := acFromWire(l.ACItems)
			if err != nil {
				return ari.ARI{}, err
			}
			return ari.FromLiteral(ari.ACLiteral(ac)), nil
		case ari.TypeAM:
			am, err := amFromWire(l.AMPairs)
			if err != nil {
				return ari.ARI{}, err
			}
			return ari.FromLiteral(ari.AMLiteral(am)), nil
		case ari.TypeTBL:
			items, err := arisFromWire(l.TBLItems)
			if err != nil {
				return ari.ARI{}, err
			}
			tbl, err := ari.NewTBL(l.TBLNCols, items)
			if err != nil {
				return ari.ARI{}, err
			}
			return ari.FromLiteral(ari.TBLLiteral(tbl)), nil
		case ari.TypeExecset:
			if l.ExecNonce == nil {
				return ari.ARI{}, fmt.Errorf("aricbor: execset missing nonce: %w", arierr.Malformed)
			}
			nonce, err := ariFromWire(*l.ExecNonce)
			if err != nil {
				return ari.ARI{}, err
			}
			targets, err := arisFromWire(l.ExecTargets)
			if err != nil {
				return ari.ARI{}, err
			}
			return ari.FromLiteral(ari.EXECSETLiteral(&ari.EXECSET{Nonce: nonce, Targets: targets})), nil
		case ari.TypeRptset:
			if l.RptNonce == nil || l.RptRefTime == nil {
				return ari.ARI{}, fmt.Errorf("aricbor: rptset missing nonce or reftime: %w", arierr.Malformed)
			}
			nonce, err := ariFromWire(*l.RptNonce)
			if err != nil {
				return ari.ARI{}, err
			}
			reftime, err := ariFromWire(*l.RptRefTime)
			if err != nil {
				return ari.ARI{}, err
			}
			reports := make([]ari.Report, len(l.Reports))
			for i, wr := range l.Reports {
				relTime, err := ariFromWire(wr.RelTime)
				if err != nil {
					return ari.ARI{}, err
				}
				source, err := ariFromWire(wr.Source)
				if err != nil {
					return ari.ARI{}, err
				}
				items, err := arisFromWire(wr.Items)
				if err != nil {
					return ari.ARI{}, err
				}
				reports[i] = ari.Report{RelTime: relTime, Source: source, Items: items}
			}
			return ari.FromLiteral(ari.RPTSETLiteral(&ari.RPTSET{Nonce: nonce, RefTime: reftime, Reports: reports})), nil
		}
	}

	lit := literalFromWireScalar(l)
	return ari.FromLiteral(lit), nil
}

func literalFromWireScalar(l *wireLit) ari.Literal {
	var lit ari.Literal
	switch ari.PrimType(l.PrimType) {
	case ari.PrimNull:
		lit = ari.NullLiteral()
	case ari.PrimBool:
		lit = ari.BoolLiteral(l.Bool)
	case ari.PrimUint64:
		lit = ari.Uint64Literal(l.Uint64)
	case ari.PrimInt64:
		lit = ari.Int64Literal(l.Int64)
	case ari.PrimFloat64:
		lit = ari.Float64Literal(l.Float64)
	case ari.PrimTstr:
		lit = ari.TstrLiteral(string(l.Bytes))
	case ari.PrimBstr:
		lit = ari.BstrLiteral(l.Bytes)
	case ari.PrimTimespec:
		lit = ari.TimespecLiteral(aritext.Timespec{Seconds: l.Seconds, Nanos: l.Nanos})
	default:
		lit = ari.Undefined()
	}
	if l.HasAriType {
		lit = lit.WithType(ari.TypeCode(l.AriType))
	}
	return lit
}

func arisFromWire(items []wireARI) ([]ari.ARI, error) {
	out := make([]ari.ARI, len(items))
	for i, w := range items {
		v, err := ariFromWire(w)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func acFromWire(items []wireARI) (*ari.AC, error) {
	out, err := arisFromWire(items)
	if err != nil {
		return nil, err
	}
	return ari.NewAC(out), nil
}

func amFromWire(pairs []wireAMPair) (*ari.AM, error) {
	out := make([]ari.AMPair, len(pairs))
	for i, p := range pairs {
		k, err := ariFromWire(p.Key)
		if err != nil {
			return nil, err
		}
		v, err := ariFromWire(p.Value)
		if err != nil {
			return nil, err
		}
		out[i] = ari.AMPair{Key: k, Value: v}
	}
	return ari.NewAM(out), nil
}
