// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ariencode

import "log/slog"

// SchemePrefix controls where the leading "ari:" token is emitted.
type SchemePrefix int8

const (
	// SchemeNone never emits the scheme prefix.
	SchemeNone SchemePrefix = iota
	// SchemeFirst emits the scheme prefix only for the outermost ARI.
	SchemeFirst
	// SchemeAll emits the scheme prefix for every nested ARI.
	SchemeAll
)

// AriTypeShow controls how a type tag is rendered.
type AriTypeShow int8

const (
	// ShowOrig renders an object path's type position using the idseg
	// form it was originally decoded in, falling back to ShowText when
	// no such form is available (always the case for literals).
	ShowOrig AriTypeShow = iota
	// ShowText renders the canonical uppercase type name.
	ShowText
	// ShowInt renders the decimal type code.
	ShowInt
)

// BstrForm controls how a BSTR literal's payload is rendered.
type BstrForm int8

const (
	// BstrRaw emits the bytes as a quoted, percent-encoded token when
	// they are valid UTF-8, falling back to base16 otherwise.
	BstrRaw BstrForm = iota
	// BstrBase16 always emits uppercase base16 inside h'...'.
	BstrBase16
	// BstrBase64URL always emits base64url inside b64'...'.
	BstrBase64URL
)

// Options configures [Encode]. The zero value is not a valid
// configuration; use [DefaultOptions] as a starting point.
type Options struct {
	SchemePrefix SchemePrefix
	ShowAriType  AriTypeShow
	IntBase      int
	FloatForm    byte
	TextIdentity bool
	BstrForm     BstrForm
	TimeText     bool

	// Logger, when non-nil, receives one Debug record per top-level
	// Encode call describing the value's kind and the resolved option
	// values, plus a Debug record for any sub-codec error encountered
	// while encoding. Logging never changes the returned text or the
	// returned error.
	Logger *slog.Logger
}

// DefaultOptions returns the encoder defaults specified for the text
// codec: scheme prefix on the outermost ARI only, canonical type
// names, decimal integers, 'g'-form floats, unquoted identity-shaped
// strings, base16 byte strings, and ISO 8601 time rendering.
func DefaultOptions() Options {
	return Options{
		SchemePrefix: SchemeFirst,
		ShowAriType:  ShowText,
		IntBase:      10,
		FloatForm:    'g',
		TextIdentity: true,
		BstrForm:     BstrBase16,
		TimeText:     true,
	}
}
