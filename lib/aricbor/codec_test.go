// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package aricbor_test

import (
	"math"
	"testing"

	"github.com/dtn-ari/ari/lib/ari"
	"github.com/dtn-ari/ari/lib/aricbor"
	"github.com/dtn-ari/ari/lib/aritext"
)

func roundTrip(t *testing.T, a ari.ARI) ari.ARI {
	t.Helper()
	data, err := aricbor.Marshal(a)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	out, err := aricbor.Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	return out
}

func TestRoundTripLiterals(t *testing.T) {
	type_, _ := ari.TypeFromName("INT")

	values := []ari.ARI{
		ari.FromLiteral(ari.Undefined()),
		ari.FromLiteral(ari.NullLiteral()),
		ari.FromLiteral(ari.BoolLiteral(true)),
		ari.FromLiteral(ari.Int64Literal(-42).WithType(type_)),
		ari.FromLiteral(ari.Uint64Literal(7)),
		ari.FromLiteral(ari.Float64Literal(1.5)),
		ari.FromLiteral(ari.Float64Literal(math.NaN())),
		ari.FromLiteral(ari.TstrLiteral("hello")),
		ari.FromLiteral(ari.BstrLiteral([]byte{0x68, 0x69})),
		ari.FromLiteral(ari.TimespecLiteral(aritext.Timespec{Seconds: 3661, Nanos: 500_000_000})),
	}
	for i, v := range values {
		out := roundTrip(t, v)
		if !ari.Equal(v, out) {
			t.Errorf("case %d: round trip not equal", i)
		}
	}
}

func TestRoundTripContainers(t *testing.T) {
	ac := ari.FromLiteral(ari.ACLiteral(ari.NewAC([]ari.ARI{
		ari.FromLiteral(ari.Int64Literal(1)),
		ari.FromLiteral(ari.Int64Literal(2)),
	})))
	if out := roundTrip(t, ac); !ari.Equal(ac, out) {
		t.Errorf("AC round trip not equal")
	}

	am := ari.FromLiteral(ari.AMLiteral(ari.NewAM([]ari.AMPair{
		{Key: ari.FromLiteral(ari.TstrLiteral("k")), Value: ari.FromLiteral(ari.Int64Literal(1))},
	})))
	if out := roundTrip(t, am); !ari.Equal(am, out) {
		t.Errorf("AM round trip not equal")
	}

	tbl, err := ari.NewTBL(2, []ari.ARI{
		ari.FromLiteral(ari.Int64Literal(1)), ari.FromLiteral(ari.Int64Literal(2)),
		ari.FromLiteral(ari.Int64Literal(3)), ari.FromLiteral(ari.Int64Literal(4)),
	})
	if err != nil {
		t.Fatalf("NewTBL: %v", err)
	}
	tblARI := ari.FromLiteral(ari.TBLLiteral(tbl))
	if out := roundTrip(t, tblARI); !ari.Equal(tblARI, out) {
		t.Errorf("TBL round trip not equal")
	}

	execset := ari.FromLiteral(ari.EXECSETLiteral(&ari.EXECSET{
		Nonce:   ari.FromLiteral(ari.Uint64Literal(1)),
		Targets: []ari.ARI{ari.FromLiteral(ari.Int64Literal(1))},
	}))
	if out := roundTrip(t, execset); !ari.Equal(execset, out) {
		t.Errorf("EXECSET round trip not equal")
	}

	rptset := ari.FromLiteral(ari.RPTSETLiteral(&ari.RPTSET{
		Nonce:   ari.FromLiteral(ari.Uint64Literal(1)),
		RefTime: ari.FromLiteral(ari.TimespecLiteral(aritext.Timespec{})),
		Reports: []ari.Report{
			{
				RelTime: ari.FromLiteral(ari.TimespecLiteral(aritext.Timespec{Seconds: 1})),
				Source:  ari.FromLiteral(ari.TstrLiteral("src")),
				Items:   []ari.ARI{ari.FromLiteral(ari.Int64Literal(9))},
			},
		},
	}))
	if out := roundTrip(t, rptset); !ari.Equal(rptset, out) {
		t.Errorf("RPTSET round trip not equal")
	}
}

func TestRoundTripReference(t *testing.T) {
	ctrl, _ := ari.TypeFromName("CTRL")
	ref := ari.FromReference(ari.NewReference(ari.ObjPath{
		NsID:       ari.TextIdseg("ns1"),
		HasAriType: true,
		AriType:    ctrl,
		ObjID:      ari.IntIdseg(7),
	}))
	if out := roundTrip(t, ref); !ari.Equal(ref, out) {
		t.Errorf("reference round trip not equal")
	}
}

func TestMarshalDeterministic(t *testing.T) {
	a := ari.FromLiteral(ari.AMLiteral(ari.NewAM([]ari.AMPair{
		{Key: ari.FromLiteral(ari.TstrLiteral("a")), Value: ari.FromLiteral(ari.Int64Literal(1))},
		{Key: ari.FromLiteral(ari.TstrLiteral("b")), Value: ari.FromLiteral(ari.Int64Literal(2))},
	})))
	first, err := aricbor.Marshal(a)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	second, err := aricbor.Marshal(a)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(first) != string(second) {
		t.Errorf("Marshal is not deterministic")
	}
}
