// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package aricbor

import (
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

// encMode is the CBOR encoder configured with Core Deterministic
// Encoding: sorted map keys, smallest integer encoding, no
// indefinite-length items. The same wire value always produces
// identical bytes.
var encMode cbor.EncMode

// decMode is the CBOR decoder configured to accept standard CBOR.
var decMode cbor.DecMode

func init() {
	var err error

	encOptions := cbor.CoreDetEncOptions()
	encMode, err = encOptions.EncMode()
	if err != nil {
		panic("aricbor: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("aricbor: CBOR decoder initialization failed: " + err.Error())
	}
}

// marshal encodes v to CBOR using Core Deterministic Encoding.
func marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// unmarshal decodes CBOR data into v.
func unmarshal(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}
