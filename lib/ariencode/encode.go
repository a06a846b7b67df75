// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ariencode

import (
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dtn-ari/ari/lib/ari"
	"github.com/dtn-ari/ari/lib/arierr"
	"github.com/dtn-ari/ari/lib/aritext"
)

// textSafeExtra is the additional percent-encoding safe set required
// by Section 4.1 of draft ietf-dtn-ari-00, beyond RFC 3986's
// unreserved bytes. It covers both the quoted-TSTR and quoted-BSTR
// (RAW form) tokens; the draft does not distinguish a separate safe
// set for the two.
const textSafeExtra = "!'+:@"

// Encode renders a as canonical UTF-8 text under opts. When
// opts.Logger is set, Encode emits one Debug record describing a's
// kind and the resolved option values before encoding, independent
// of success or failure.
func Encode(a ari.ARI, opts Options) (string, error) {
	e := &encoder{opts: opts, logger: opts.Logger}
	e.logEncodeCall(a)
	if err := e.encodeARI(a); err != nil {
		return "", err
	}
	return e.out.String(), nil
}

// encoder threads options and the current container-nesting depth
// through the recursive descent; no ambient or global state is used.
type encoder struct {
	out    strings.Builder
	opts   Options
	depth  int
	logger *slog.Logger
}

func (e *encoder) logEncodeCall(a ari.ARI) {
	if e.logger == nil {
		return
	}
	e.logger.Debug("ariencode: encode",
		"kind", ariKindLabel(a),
		"scheme_prefix", e.opts.SchemePrefix,
		"show_ari_type", e.opts.ShowAriType,
		"int_base", e.opts.IntBase,
		"float_form", string(e.opts.FloatForm),
		"text_identity", e.opts.TextIdentity,
		"bstr_form", e.opts.BstrForm,
		"time_text", e.opts.TimeText,
	)
}

// logSubCodecErr logs a sub-codec failure at Debug and returns err
// unchanged, so callers can write "return e.logSubCodecErr(err, ...)"
// without altering control flow.
func (e *encoder) logSubCodecErr(err error, field string) error {
	if err == nil || e.logger == nil {
		return err
	}
	e.logger.Debug("ariencode: sub-codec error", "field", field, "error", err)
	return err
}

// ariKindLabel names the top-level shape of a for a log record: the
// reference keyword, or a literal's ari-type name, or its primitive
// type name when it carries no ari-type tag.
func ariKindLabel(a ari.ARI) string {
	if _, ok := a.Reference(); ok {
		return "reference"
	}
	lit, _ := a.Literal()
	if lit.HasAriType() {
		if name, ok := ari.TypeToName(lit.AriType()); ok {
			return name
		}
	}
	switch lit.PrimType() {
	case ari.PrimUndefined:
		return "undefined"
	case ari.PrimNull:
		return "null"
	case ari.PrimBool:
		return "bool"
	case ari.PrimUint64:
		return "uint64"
	case ari.PrimInt64:
		return "int64"
	case ari.PrimFloat64:
		return "float64"
	case ari.PrimTstr:
		return "tstr"
	case ari.PrimBstr:
		return "bstr"
	case ari.PrimTimespec:
		return "timespec"
	default:
		return "unknown"
	}
}

func (e *encoder) emitScheme() {
	switch e.opts.SchemePrefix {
	case SchemeAll:
		e.out.WriteString("ari:")
	case SchemeFirst:
		if e.depth == 0 {
			e.out.WriteString("ari:")
		}
	}
}

func (e *encoder) encodeARI(a ari.ARI) error {
	e.emitScheme()
	if ref, ok := a.Reference(); ok {
		return e.encodeReference(ref)
	}
	lit, _ := a.Literal()
	return e.encodeLiteral(lit)
}

// encodeChild descends one container level, encoding a as a nested
// ARI. The scheme prefix rules above key off this depth.
func (e *encoder) encodeChild(a ari.ARI) error {
	e.depth++
	err := e.encodeARI(a)
	e.depth--
	return err
}

// encodeHeaderField renders "<label>=<value>;" with the scheme
// prefix temporarily forced off for the value, restoring the
// configured policy on exit — the saved-options trick used for the
// n=, r=, t=, s= fields of EXECSET and RPTSET.
func (e *encoder) encodeHeaderField(label byte, value ari.ARI) error {
	e.out.WriteByte(label)
	e.out.WriteByte('=')
	saved := e.opts.SchemePrefix
	e.opts.SchemePrefix = SchemeNone
	err := e.encodeChild(value)
	e.opts.SchemePrefix = saved
	e.out.WriteByte(';')
	return err
}

func (e *encoder) encodeReference(ref ari.Reference) error {
	e.out.WriteString("//")
	if err := e.encodeIdseg(ref.ObjPath.NsID); err != nil {
		return err
	}

	hasType := ref.ObjPath.HasAriType || ref.ObjPath.TypeID.Form() != ari.IdsegNull
	if !hasType {
		return nil
	}
	e.out.WriteByte('/')
	if err := e.encodeTypePosition(ref.ObjPath); err != nil {
		return err
	}

	if ref.ObjPath.ObjID.Form() == ari.IdsegNull {
		return nil
	}
	e.out.WriteByte('/')
	if err := e.encodeIdseg(ref.ObjPath.ObjID); err != nil {
		return err
	}

	switch ref.Params.State() {
	case ari.ParamsAC:
		ac, _ := ref.Params.AC()
		return e.encodeACBody(ac)
	case ari.ParamsAM:
		am, _ := ref.Params.AM()
		return e.encodeAMBody(am)
	default:
		return nil
	}
}

func (e *encoder) encodeIdseg(seg ari.Idseg) error {
	switch seg.Form() {
	case ari.IdsegText:
		text, _ := seg.Text()
		e.out.WriteString(aritext.PercentEncode([]byte(text), ""))
	case ari.IdsegInt:
		v, _ := seg.Int()
		e.out.WriteString(strconv.FormatInt(v, 10))
	}
	return nil
}

// encodeTypePosition renders the type segment of an object path
// according to the type-name policy in effect.
func (e *encoder) encodeTypePosition(path ari.ObjPath) error {
	if !path.HasAriType {
		return e.encodeIdseg(path.TypeID)
	}
	switch e.opts.ShowAriType {
	case ShowInt:
		e.out.WriteString(strconv.FormatInt(int64(path.AriType), 10))
		return nil
	case ShowOrig:
		if path.TypeID.Form() != ari.IdsegNull {
			return e.encodeIdseg(path.TypeID)
		}
		fallthrough
	default:
		name, ok := ari.TypeToName(path.AriType)
		if !ok {
			return fmt.Errorf("encode: unregistered type code %d: %w", path.AriType, arierr.Unsupported)
		}
		e.out.WriteString(name)
		return nil
	}
}

// typeNameToken renders a literal's type tag. Literals carry no
// originally-decoded idseg, so ShowOrig behaves exactly like
// ShowText.
func (e *encoder) typeNameToken(code ari.TypeCode) (string, error) {
	if e.opts.ShowAriType == ShowInt {
		return strconv.FormatInt(int64(code), 10), nil
	}
	name, ok := ari.TypeToName(code)
	if !ok {
		return "", fmt.Errorf("encode: unregistered type code %d: %w", code, arierr.Unsupported)
	}
	return name, nil
}

func (e *encoder) encodeLiteral(lit ari.Literal) error {
	if !lit.HasAriType() {
		return e.encodePrimitivePayload(lit)
	}

	name, err := e.typeNameToken(lit.AriType())
	if err != nil {
		return err
	}
	e.out.WriteByte('/')
	e.out.WriteString(name)
	e.out.WriteByte('/')

	switch lit.AriType() {
	case ari.TypeTP:
		return e.encodeTimeValue(lit.TimeValue(), true)
	case ari.TypeTD:
		return e.encodeTimeValue(lit.TimeValue(), false)
	case ari.TypeAC:
		ac, _ := lit.AC()
		return e.encodeACBody(ac)
	case ari.TypeAM:
		am, _ := lit.AM()
		return e.encodeAMBody(am)
	case ari.TypeTBL:
		tbl, _ := lit.TBL()
		return e.encodeTBLBody(tbl)
	case ari.TypeExecset:
		es, _ := lit.EXECSET()
		return e.encodeExecsetBody(es)
	case ari.TypeRptset:
		rs, _ := lit.RPTSET()
		return e.encodeRptsetBody(rs)
	default:
		return e.encodePrimitivePayload(lit)
	}
}

func (e *encoder) encodeTimeValue(ts aritext.Timespec, isTP bool) error {
	if !e.opts.TimeText {
		e.out.WriteString(aritext.DecFracEncode(ts))
		return nil
	}
	if isTP {
		s, err := aritext.UTCTimeEncode(ts, false)
		if err != nil {
			return e.logSubCodecErr(err, "TP")
		}
		e.out.WriteString(s)
		return nil
	}
	s, err := aritext.TimePeriodEncode(ts)
	if err != nil {
		return e.logSubCodecErr(err, "TD")
	}
	e.out.WriteString(s)
	return nil
}

func (e *encoder) encodePrimitivePayload(lit ari.Literal) error {
	switch lit.PrimType() {
	case ari.PrimUndefined:
		e.out.WriteString("undefined")
		return nil
	case ari.PrimNull:
		e.out.WriteString("null")
		return nil
	case ari.PrimBool:
		if lit.BoolValue() {
			e.out.WriteString("true")
		} else {
			e.out.WriteString("false")
		}
		return nil
	case ari.PrimUint64:
		s, err := aritext.UintEncode(lit.Uint64Value(), e.opts.IntBase)
		if err != nil {
			return e.logSubCodecErr(err, "uint")
		}
		e.out.WriteString(s)
		return nil
	case ari.PrimInt64:
		s, err := aritext.IntEncode(lit.Int64Value(), e.opts.IntBase)
		if err != nil {
			return e.logSubCodecErr(err, "int")
		}
		e.out.WriteString(s)
		return nil
	case ari.PrimFloat64:
		s, err := aritext.FloatEncode(lit.Float64Value(), e.opts.FloatForm)
		if err != nil {
			return e.logSubCodecErr(err, "float")
		}
		e.out.WriteString(s)
		return nil
	case ari.PrimTstr:
		return e.encodeTstr(string(lit.BytesValue()))
	case ari.PrimBstr:
		return e.encodeBstr(lit.BytesValue())
	case ari.PrimTimespec:
		e.out.WriteString(aritext.DecFracEncode(lit.TimeValue()))
		return nil
	default:
		return fmt.Errorf("encode: literal carries no payload form: %w", arierr.Unsupported)
	}
}

func (e *encoder) encodeTstr(s string) error {
	if e.opts.TextIdentity && aritext.IsIdentity(s) {
		e.out.WriteString(s)
		return nil
	}
	token := "\"" + aritext.SlashEscape(s, '"') + "\""
	e.out.WriteString(aritext.PercentEncode([]byte(token), textSafeExtra))
	return nil
}

func (e *encoder) encodeBstr(b []byte) error {
	switch e.opts.BstrForm {
	case BstrBase64URL:
		e.out.WriteString("b64'" + aritext.Base64Encode(b, true) + "'")
		return nil
	case BstrBase16:
		e.out.WriteString("h'" + aritext.Base16Encode(b, true) + "'")
		return nil
	default: // BstrRaw
		withNul := append(append([]byte(nil), b...), 0)
		if utf8.Valid(withNul) {
			token := "'" + aritext.SlashEscape(string(b), '\'') + "'"
			e.out.WriteString(aritext.PercentEncode([]byte(token), textSafeExtra))
			return nil
		}
		e.out.WriteString("h'" + aritext.Base16Encode(b, true) + "'")
		return nil
	}
}

func (e *encoder) encodeACBody(ac *ari.AC) error {
	e.out.WriteByte('(')
	for i, item := range ac.Items() {
		if i > 0 {
			e.out.WriteByte(',')
		}
		if err := e.encodeChild(item); err != nil {
			return err
		}
	}
	e.out.WriteByte(')')
	return nil
}

// encodeAMBody emits an AM's pairs sorted by the encoded text of the
// key, ties broken by the pair's original insertion index, so two AMs
// with the same entries in different insertion orders encode
// byte-identically.
func (e *encoder) encodeAMBody(am *ari.AM) error {
	pairs := am.Pairs()
	keyTexts := make([]string, len(pairs))
	for i, pair := range pairs {
		text, err := e.keyText(pair.Key)
		if err != nil {
			return err
		}
		keyTexts[i] = text
	}

	order := make([]int, len(pairs))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return keyTexts[order[a]] < keyTexts[order[b]]
	})

	e.out.WriteByte('(')
	for i, idx := range order {
		if i > 0 {
			e.out.WriteByte(',')
		}
		if err := e.encodeChild(pairs[idx].Key); err != nil {
			return err
		}
		e.out.WriteByte('=')
		if err := e.encodeChild(pairs[idx].Value); err != nil {
			return err
		}
	}
	e.out.WriteByte(')')
	return nil
}

// keyText renders a as it would appear at the current nesting depth,
// without committing it to the output, so AM entries can be sorted by
// their encoded key text before being written for real.
func (e *encoder) keyText(a ari.ARI) (string, error) {
	sub := &encoder{opts: e.opts, depth: e.depth + 1}
	if err := sub.encodeARI(a); err != nil {
		return "", err
	}
	return sub.out.String(), nil
}

func (e *encoder) encodeTBLBody(tbl *ari.TBL) error {
	fmt.Fprintf(&e.out, "c=%d;", tbl.NCols())
	ncols := tbl.NCols()
	if ncols == 0 {
		return nil
	}
	items := tbl.Items()
	for row := 0; row < tbl.Rows(); row++ {
		e.out.WriteByte('(')
		for col := 0; col < ncols; col++ {
			if col > 0 {
				e.out.WriteByte(',')
			}
			if err := e.encodeChild(items[row*ncols+col]); err != nil {
				return err
			}
		}
		e.out.WriteByte(')')
	}
	return nil
}

func (e *encoder) encodeExecsetBody(es *ari.EXECSET) error {
	if err := e.encodeHeaderField('n', es.Nonce); err != nil {
		return err
	}
	e.out.WriteByte('(')
	for i, target := range es.Targets {
		if i > 0 {
			e.out.WriteByte(',')
		}
		if err := e.encodeChild(target); err != nil {
			return err
		}
	}
	e.out.WriteByte(')')
	return nil
}

func (e *encoder) encodeRptsetBody(rs *ari.RPTSET) error {
	if err := e.encodeHeaderField('n', rs.Nonce); err != nil {
		return err
	}
	if err := e.encodeHeaderField('r', rs.RefTime); err != nil {
		return err
	}
	for _, report := range rs.Reports {
		if err := e.encodeReport(report); err != nil {
			return err
		}
	}
	return nil
}

func (e *encoder) encodeReport(r ari.Report) error {
	e.out.WriteByte('(')
	if err := e.encodeHeaderField('t', r.RelTime); err != nil {
		return err
	}
	if err := e.encodeHeaderField('s', r.Source); err != nil {
		return err
	}
	e.out.WriteByte('(')
	for i, item := range r.Items {
		if i > 0 {
			e.out.WriteByte(',')
		}
		if err := e.encodeChild(item); err != nil {
			return err
		}
	}
	e.out.WriteByte(')')
	e.out.WriteByte(')')
	return nil
}
