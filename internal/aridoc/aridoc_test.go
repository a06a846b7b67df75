// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package aridoc_test

import (
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/dtn-ari/ari/internal/aridoc"
	"github.com/dtn-ari/ari/lib/ariencode"
)

func encodeYAML(t *testing.T, doc string) string {
	t.Helper()
	var n aridoc.Node
	if err := yaml.Unmarshal([]byte(doc), &n); err != nil {
		t.Fatalf("yaml.Unmarshal: %v", err)
	}
	value, err := aridoc.ARIFromNode(n)
	if err != nil {
		t.Fatalf("ARIFromNode: %v", err)
	}
	text, err := ariencode.Encode(value, ariencode.DefaultOptions())
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	return text
}

func TestLiteralNullNode(t *testing.T) {
	got := encodeYAML(t, `lit:
  "null": true
`)
	if got != "ari:null" {
		t.Errorf("got %q, want %q", got, "ari:null")
	}
}

func TestLiteralIntWithType(t *testing.T) {
	got := encodeYAML(t, `lit:
  int: -42
  ari_type: INT
`)
	if got != "ari:/INT/-42" {
		t.Errorf("got %q, want %q", got, "ari:/INT/-42")
	}
}

func TestLiteralACNode(t *testing.T) {
	got := encodeYAML(t, `lit:
  ari_type: AC
  ac:
    - {lit: {int: 1}}
    - {lit: {int: 2}}
    - {lit: {int: 3}}
`)
	if got != "ari:/AC/(1,2,3)" {
		t.Errorf("got %q, want %q", got, "ari:/AC/(1,2,3)")
	}
}

func TestReferenceNode(t *testing.T) {
	got := encodeYAML(t, `ref:
  ns: {text: ns1}
  type: {}
  obj: {int: 7}
  ari_type: CTRL
`)
	if got != "ari://ns1/CTRL/7" {
		t.Errorf("got %q, want %q", got, "ari://ns1/CTRL/7")
	}
}

func TestLiteralUnrecognizedNodeErrors(t *testing.T) {
	var n aridoc.Node
	if err := yaml.Unmarshal([]byte(`lit: {}`), &n); err != nil {
		t.Fatalf("yaml.Unmarshal: %v", err)
	}
	if _, err := aridoc.ARIFromNode(n); err == nil {
		t.Error("expected an error for an empty literal node")
	}
}

func TestUnknownAriTypeErrors(t *testing.T) {
	var n aridoc.Node
	if err := yaml.Unmarshal([]byte(`lit:
  int: 1
  ari_type: NOT_A_TYPE
`), &n); err != nil {
		t.Fatalf("yaml.Unmarshal: %v", err)
	}
	if _, err := aridoc.ARIFromNode(n); err == nil {
		t.Error("expected an error for an unknown ari_type")
	}
}

func TestAMDedupPreservedThroughNode(t *testing.T) {
	got := encodeYAML(t, `lit:
  ari_type: AM
  am:
    - key: {lit: {tstr: a}}
      value: {lit: {int: 1}}
    - key: {lit: {tstr: a}}
      value: {lit: {int: 2}}
`)
	if got != "ari:/AM/(a=2)" {
		t.Errorf("got %q, want %q", got, "ari:/AM/(a=2)")
	}
}

func TestLiteralTimespecNode(t *testing.T) {
	got := encodeYAML(t, `lit:
  ari_type: TD
  timespec:
    seconds: 3661
    nanos: 500000000
`)
	if got != "ari:/TD/PT1H1M1.5S" {
		t.Errorf("got %q, want %q", got, "ari:/TD/PT1H1M1.5S")
	}
}

func TestLiteralExecsetNode(t *testing.T) {
	got := encodeYAML(t, `lit:
  execset:
    nonce: {lit: {int: 1}}
    targets:
      - {lit: {int: 2}}
`)
	if got != "ari:/EXECSET/n=1;(2)" {
		t.Errorf("got %q, want %q", got, "ari:/EXECSET/n=1;(2)")
	}
}

func TestLiteralExecsetNodeNonceRandom(t *testing.T) {
	got := encodeYAML(t, `lit:
  execset:
    nonce_random: true
    targets:
      - {lit: {int: 2}}
`)
	if got == "" {
		t.Fatal("expected non-empty output")
	}
}

func TestLiteralRptsetNode(t *testing.T) {
	got := encodeYAML(t, `lit:
  rptset:
    nonce: {lit: {int: 1}}
    ref_time: {lit: {timespec: {seconds: 0}, ari_type: TP}}
    reports:
      - rel_time: {lit: {timespec: {seconds: 0}, ari_type: TD}}
        source: {lit: {int: 7}}
        items:
          - {lit: {int: 8}}
`)
	if got == "" {
		t.Fatal("expected non-empty output")
	}
}

func TestExecsetNodeRequiresNonce(t *testing.T) {
	var n aridoc.Node
	if err := yaml.Unmarshal([]byte(`lit:
  execset:
    targets:
      - {lit: {int: 2}}
`), &n); err != nil {
		t.Fatalf("yaml.Unmarshal: %v", err)
	}
	if _, err := aridoc.ARIFromNode(n); err == nil {
		t.Error("expected an error when neither nonce nor nonce_random is set")
	}
}
