// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - the authenticated principal
//
// an account is an Ed25519 public key tagged with the network it
// belongs to; the text form is Base58 of: flags ⧺ public key ⧺
// 4 byte SHA3-256 checksum
package account

import (
	"bytes"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/sited/fault"
)

// miscellaneous constants
const (
	checksumLength = 4

	// bits in the flags byte starting from LSB
	publicKeyCode = 0x01
	testKeyCode   = 0x02
)

// Account - an authenticated principal
type Account struct {
	Test      bool
	PublicKey []byte
}

// Bytes - the canonical byte form: flags ⧺ public key
//
// this is the form used for all database keys
func (account *Account) Bytes() []byte {
	flags := byte(publicKeyCode)
	if account.Test {
		flags |= testKeyCode
	}
	buffer := make([]byte, 1, len(account.PublicKey)+1)
	buffer[0] = flags
	return append(buffer, account.PublicKey...)
}

// String - Base58 encoded account with checksum
func (account *Account) String() string {
	buffer := account.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// Equal - same network and same public key
func (account *Account) Equal(other *Account) bool {
	return account.Test == other.Test && bytes.Equal(account.PublicKey, other.PublicKey)
}

// IsTesting - true if the account belongs to a non-production network
func (account *Account) IsTesting() bool {
	return account.Test
}

// CheckSignature - verify an Ed25519 signature over a message
func (account *Account) CheckSignature(message []byte, signature Signature) error {
	if ed25519.PublicKeySize != len(account.PublicKey) {
		return fault.InvalidKeyLength
	}
	if ed25519.SignatureSize != len(signature) {
		return fault.InvalidSignature
	}
	if !ed25519.Verify(account.PublicKey, message, []byte(signature)) {
		return fault.InvalidSignature
	}
	return nil
}

// AccountFromBase58 - convert a Base58 encoded string to an account
func AccountFromBase58(accountBase58Encoded string) (*Account, error) {
	decoded, err := base58.Decode(accountBase58Encoded)
	if nil != err {
		return nil, fault.CannotDecodeAccount
	}

	// minimum: flags + key + checksum
	if len(decoded) <= 1+checksumLength {
		return nil, fault.CannotDecodeAccount
	}

	checksumStart := len(decoded) - checksumLength
	checksum := sha3.Sum256(decoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], decoded[checksumStart:]) {
		return nil, fault.ChecksumMismatch
	}

	flags := decoded[0]
	if publicKeyCode != flags&publicKeyCode {
		return nil, fault.NotPublicKey
	}

	publicKey := decoded[1:checksumStart]
	if ed25519.PublicKeySize != len(publicKey) {
		return nil, fault.InvalidKeyLength
	}

	return &Account{
		Test:      0 != flags&testKeyCode,
		PublicKey: publicKey,
	}, nil
}

// MarshalText - the JSON and text form is the Base58 string
func (account Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// UnmarshalText - convert from the Base58 string form
func (account *Account) UnmarshalText(text []byte) error {
	a, err := AccountFromBase58(string(text))
	if nil != err {
		return err
	}
	account.Test = a.Test
	account.PublicKey = a.PublicKey
	return nil
}
