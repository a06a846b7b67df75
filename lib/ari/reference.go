// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ari

// ParamsState selects which alternative of a reference's actual
// parameters is populated.
type ParamsState int8

const (
	ParamsNone ParamsState = iota
	ParamsAC
	ParamsAM
)

// Params holds a reference's actual parameters, in one of three
// states: none, a positional AC, or a keyword AM.
type Params struct {
	state ParamsState
	ac    *AC
	am    *AM
}

// NoParams returns the empty parameter state.
func NoParams() Params { return Params{state: ParamsNone} }

// ACParams returns the positional-parameter state wrapping ac.
func ACParams(ac *AC) Params { return Params{state: ParamsAC, ac: ac} }

// AMParams returns the keyword-parameter state wrapping am.
func AMParams(am *AM) Params { return Params{state: ParamsAM, am: am} }

// State reports which alternative p holds.
func (p Params) State() ParamsState { return p.state }

// AC returns p's positional parameters and true if p is AC-state.
func (p Params) AC() (*AC, bool) { return p.ac, p.state == ParamsAC }

// AM returns p's keyword parameters and true if p is AM-state.
func (p Params) AM() (*AM, bool) { return p.am, p.state == ParamsAM }

// Reference is an object path together with optional actual
// parameters.
type Reference struct {
	ObjPath ObjPath
	Params  Params
}

// NewReference returns a reference to path with no parameters.
func NewReference(path ObjPath) Reference {
	return Reference{ObjPath: path, Params: NoParams()}
}

// NewReferenceAC returns a reference to path with positional
// parameters.
func NewReferenceAC(path ObjPath, ac *AC) Reference {
	return Reference{ObjPath: path, Params: ACParams(ac)}
}

// NewReferenceAM returns a reference to path with keyword parameters.
func NewReferenceAM(path ObjPath, am *AM) Reference {
	return Reference{ObjPath: path, Params: AMParams(am)}
}
