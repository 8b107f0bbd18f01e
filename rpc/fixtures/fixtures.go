// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - helpers shared by the RPC service tests
package fixtures

import (
	"bytes"
	"crypto/ed25519"
	"fmt"
	"os"

	"github.com/bitmark-inc/logger"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// deterministic key pairs so signatures are reproducible
var (
	IssuerPublicKey  []byte
	IssuerPrivateKey ed25519.PrivateKey

	BuyerPublicKey  []byte
	BuyerPrivateKey ed25519.PrivateKey
)

func init() {
	IssuerPrivateKey = ed25519.NewKeyFromSeed(bytes.Repeat([]byte{0x11}, ed25519.SeedSize))
	IssuerPublicKey = IssuerPrivateKey.Public().(ed25519.PublicKey)

	BuyerPrivateKey = ed25519.NewKeyFromSeed(bytes.Repeat([]byte{0x22}, ed25519.SeedSize))
	BuyerPublicKey = BuyerPrivateKey.Public().(ed25519.PublicKey)
}

func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
