// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/hex"

	"github.com/bitmark-inc/sited/fault"
)

// Signature - an Ed25519 signature as raw bytes
type Signature []byte

// MarshalText - the JSON and text form is hexadecimal
func (signature Signature) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(signature))
	buffer := make([]byte, size)
	hex.Encode(buffer, signature)
	return buffer, nil
}

// UnmarshalText - convert from the hexadecimal form
func (signature *Signature) UnmarshalText(text []byte) error {
	buffer := make([]byte, hex.DecodedLen(len(text)))
	byteCount, err := hex.Decode(buffer, text)
	if nil != err {
		return fault.InvalidSignature
	}
	*signature = buffer[:byteCount]
	return nil
}
