// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ari

import (
	"fmt"

	"github.com/dtn-ari/ari/lib/arierr"
)

// VisitContext carries the parent node (nil at the root) and whether
// the current node is being visited as an AM key rather than an AM
// value.
type VisitContext struct {
	Parent   *ARI
	IsMapKey bool
}

// Visitor receives pre-order callbacks during [Visit]. Any callback
// returning a non-nil error aborts the walk; that error is returned
// to the caller of Visit unchanged.
type Visitor struct {
	VisitARI     func(node *ARI, ctx VisitContext) error
	VisitRef     func(ref *Reference, ctx VisitContext) error
	VisitLit     func(lit *Literal, ctx VisitContext) error
	VisitObjPath func(path *ObjPath, ctx VisitContext) error
}

// Visit performs a pre-order traversal of root. At each node it
// calls VisitARI, then VisitRef or VisitLit for the node's variant,
// then VisitObjPath and parameter recursion for a reference, or
// container recursion for a type-tagged literal.
func Visit(root *ARI, v Visitor) error {
	if root == nil {
		return fmt.Errorf("visit: %w", arierr.NullArg)
	}
	return visitARI(root, v, VisitContext{})
}

func visitARI(node *ARI, v Visitor, ctx VisitContext) error {
	if v.VisitARI != nil {
		if err := v.VisitARI(node, ctx); err != nil {
			return err
		}
	}

	sub := VisitContext{Parent: node, IsMapKey: ctx.IsMapKey}

	if node.isRef {
		if v.VisitRef != nil {
			if err := v.VisitRef(&node.ref, sub); err != nil {
				return err
			}
		}
		if v.VisitObjPath != nil {
			if err := v.VisitObjPath(&node.ref.ObjPath, sub); err != nil {
				return err
			}
		}
		switch node.ref.Params.state {
		case ParamsAC:
			return visitAC(node.ref.Params.ac, v, sub)
		case ParamsAM:
			return visitAM(node.ref.Params.am, v, sub)
		default:
			return nil
		}
	}

	if v.VisitLit != nil {
		if err := v.VisitLit(&node.lit, sub); err != nil {
			return err
		}
	}
	if !node.lit.hasAriType {
		return nil
	}
	switch node.lit.ariType {
	case TypeAC:
		ac, _ := node.lit.AC()
		return visitAC(ac, v, sub)
	case TypeAM:
		am, _ := node.lit.AM()
		return visitAM(am, v, sub)
	case TypeTBL:
		tbl, _ := node.lit.TBL()
		return visitTBL(tbl, v, sub)
	case TypeExecset:
		es, _ := node.lit.EXECSET()
		return visitExecset(es, v, sub)
	case TypeRptset:
		rs, _ := node.lit.RPTSET()
		return visitRptset(rs, v, sub)
	default:
		return nil
	}
}

func visitAC(c *AC, v Visitor, ctx VisitContext) error {
	for i := range c.items {
		if err := visitARI(&c.items[i], v, ctx); err != nil {
			return err
		}
	}
	return nil
}

func visitAM(m *AM, v Visitor, ctx VisitContext) error {
	for i := range m.pairs {
		keyCtx := ctx
		keyCtx.IsMapKey = true
		if err := visitARI(&m.pairs[i].Key, v, keyCtx); err != nil {
			return err
		}
		valCtx := ctx
		valCtx.IsMapKey = false
		if err := visitARI(&m.pairs[i].Value, v, valCtx); err != nil {
			return err
		}
	}
	return nil
}

func visitTBL(t *TBL, v Visitor, ctx VisitContext) error {
	for i := range t.items {
		if err := visitARI(&t.items[i], v, ctx); err != nil {
			return err
		}
	}
	return nil
}

func visitExecset(e *EXECSET, v Visitor, ctx VisitContext) error {
	if err := visitARI(&e.Nonce, v, ctx); err != nil {
		return err
	}
	for i := range e.Targets {
		if err := visitARI(&e.Targets[i], v, ctx); err != nil {
			return err
		}
	}
	return nil
}

func visitReport(r *Report, v Visitor, ctx VisitContext) error {
	if err := visitARI(&r.RelTime, v, ctx); err != nil {
		return err
	}
	if err := visitARI(&r.Source, v, ctx); err != nil {
		return err
	}
	for i := range r.Items {
		if err := visitARI(&r.Items[i], v, ctx); err != nil {
			return err
		}
	}
	return nil
}

func visitRptset(rs *RPTSET, v Visitor, ctx VisitContext) error {
	if err := visitARI(&rs.Nonce, v, ctx); err != nil {
		return err
	}
	if err := visitARI(&rs.RefTime, v, ctx); err != nil {
		return err
	}
	for i := range rs.Reports {
		if err := visitReport(&rs.Reports[i], v, ctx); err != nil {
			return err
		}
	}
	return nil
}
