// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package site_test

import (
	"bytes"
	"os"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/sited/account"
	"github.com/bitmark-inc/sited/currency"
	"github.com/bitmark-inc/sited/messagebus"
	"github.com/bitmark-inc/sited/site"
	"github.com/bitmark-inc/sited/storage"
)

const (
	databaseFileName = "test.leveldb"
	testingDirName   = "testing"

	// small threshold so a buyer can be drained in tests
	existentialDeposit = 1
)

// ledger shared by all tests for funding and balance checks
var testLedger *currency.PoolLedger

func removeFiles() {
	os.RemoveAll(databaseFileName)
	os.RemoveAll(testingDirName)
}

func setup(t *testing.T) {
	removeFiles()

	_ = os.Mkdir(testingDirName, 0700)
	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	testLedger = currency.New(storage.Pool.Balances, existentialDeposit)

	err = site.Initialise(site.Handles{
		Sites:      storage.Pool.Sites,
		SitePrices: storage.Pool.SitePrices,
		NextSiteId: storage.Pool.NextSiteId,
	}, testLedger)
	if nil != err {
		t.Fatalf("site initialise error: %s", err)
	}

	messagebus.Flush()
}

func teardown(t *testing.T) {
	_ = site.Finalise()
	storage.Finalise()
	logger.Finalise()
	messagebus.Flush()
	removeFiles()
}

// a test account with a fixed key, one per tag byte
func makeAccount(tag byte) *account.Account {
	return &account.Account{
		Test:      true,
		PublicKey: bytes.Repeat([]byte{tag}, 32),
	}
}

// read one queued event, failing the test if none arrives
func nextEvent(t *testing.T) interface{} {
	select {
	case m := <-messagebus.Chan():
		return m.Item
	case <-time.After(time.Second):
		t.Fatal("no event queued")
		return nil
	}
}

// ensure nothing was queued
func assertNoEvent(t *testing.T) {
	select {
	case m := <-messagebus.Chan():
		t.Fatalf("unexpected event: %v", m.Item)
	default:
	}
}

func priceP(p uint64) *uint64 {
	return &p
}
