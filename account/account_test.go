// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/sited/account"
	"github.com/bitmark-inc/sited/fault"
)

func TestBase58RoundTrip(t *testing.T) {
	publicKey, _, err := ed25519.GenerateKey(rand.Reader)
	assert.Nil(t, err, "key generation failed")

	original := &account.Account{
		Test:      true,
		PublicKey: publicKey,
	}

	decoded, err := account.AccountFromBase58(original.String())
	assert.Nil(t, err, "decode failed")
	assert.Equal(t, true, original.Equal(decoded), "round trip mismatch")
	assert.Equal(t, true, decoded.IsTesting(), "test flag lost")
}

func TestBase58LiveNetwork(t *testing.T) {
	publicKey, _, err := ed25519.GenerateKey(rand.Reader)
	assert.Nil(t, err, "key generation failed")

	original := &account.Account{
		Test:      false,
		PublicKey: publicKey,
	}

	decoded, err := account.AccountFromBase58(original.String())
	assert.Nil(t, err, "decode failed")
	assert.Equal(t, false, decoded.IsTesting(), "test flag set")
}

func TestBase58ChecksumMismatch(t *testing.T) {
	publicKey, _, err := ed25519.GenerateKey(rand.Reader)
	assert.Nil(t, err, "key generation failed")

	a := &account.Account{
		Test:      true,
		PublicKey: publicKey,
	}

	text := a.String()

	// corrupt one character
	corrupted := []byte(text)
	if 'z' == corrupted[10] {
		corrupted[10] = 'x'
	} else {
		corrupted[10] = 'z'
	}

	_, err = account.AccountFromBase58(string(corrupted))
	assert.NotNil(t, err, "corrupted account decoded")
}

func TestBase58TooShort(t *testing.T) {
	_, err := account.AccountFromBase58("3abc")
	assert.Equal(t, fault.CannotDecodeAccount, err, "wrong error")
}

func TestBytesKeyForm(t *testing.T) {
	publicKey := bytes.Repeat([]byte{0x7f}, ed25519.PublicKeySize)

	live := &account.Account{Test: false, PublicKey: publicKey}
	test := &account.Account{Test: true, PublicKey: publicKey}

	liveBytes := live.Bytes()
	testBytes := test.Bytes()

	assert.Equal(t, 1+ed25519.PublicKeySize, len(liveBytes), "wrong key length")
	assert.Equal(t, byte(0x01), liveBytes[0], "wrong live flags")
	assert.Equal(t, byte(0x03), testBytes[0], "wrong test flags")

	// the two networks never share database keys
	assert.Equal(t, false, bytes.Equal(liveBytes, testBytes), "network keys collide")
}

func TestCheckSignature(t *testing.T) {
	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	assert.Nil(t, err, "key generation failed")

	a := &account.Account{
		Test:      true,
		PublicKey: publicKey,
	}

	message := []byte("a signed message")
	signature := account.Signature(ed25519.Sign(privateKey, message))

	assert.Nil(t, a.CheckSignature(message, signature), "valid signature rejected")

	err = a.CheckSignature([]byte("a different message"), signature)
	assert.Equal(t, fault.InvalidSignature, err, "wrong error")

	err = a.CheckSignature(message, signature[:10])
	assert.Equal(t, fault.InvalidSignature, err, "wrong error")
}

func TestMarshalText(t *testing.T) {
	publicKey, _, err := ed25519.GenerateKey(rand.Reader)
	assert.Nil(t, err, "key generation failed")

	a := account.Account{
		Test:      true,
		PublicKey: publicKey,
	}

	text, err := a.MarshalText()
	assert.Nil(t, err, "marshal failed")

	var decoded account.Account
	assert.Nil(t, decoded.UnmarshalText(text), "unmarshal failed")
	assert.Equal(t, true, a.Equal(&decoded), "round trip mismatch")
}
