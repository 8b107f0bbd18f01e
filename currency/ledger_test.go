// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package currency_test

import (
	"bytes"
	"math"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/sited/account"
	"github.com/bitmark-inc/sited/currency"
	"github.com/bitmark-inc/sited/fault"
	"github.com/bitmark-inc/sited/storage"
)

const (
	databaseFileName = "test.leveldb"
	testingDirName   = "testing"
)

func removeFiles() {
	os.RemoveAll(databaseFileName)
	os.RemoveAll(testingDirName)
}

func setup(t *testing.T) *currency.PoolLedger {
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

	return currency.New(storage.Pool.Balances, 10)
}

func teardown(t *testing.T) {
	storage.Finalise()
	logger.Finalise()
	removeFiles()
}

func makeAccount(tag byte) *account.Account {
	return &account.Account{
		Test:      true,
		PublicKey: bytes.Repeat([]byte{tag}, 32),
	}
}

func TestTransfer(t *testing.T) {
	ledger := setup(t)
	defer teardown(t)

	payer := makeAccount(0x01)
	payee := makeAccount(0x02)

	assert.Nil(t, ledger.Deposit(payer, 100), "deposit failed")

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin failed")

	err = ledger.Transfer(trx, payer, payee, 60, currency.KeepAlive)
	assert.Nil(t, err, "transfer failed")
	assert.Nil(t, trx.Commit(), "commit failed")

	assert.Equal(t, uint64(40), ledger.Balance(payer), "payer balance mismatch")
	assert.Equal(t, uint64(60), ledger.Balance(payee), "payee balance mismatch")
}

func TestTransferInsufficientFunds(t *testing.T) {
	ledger := setup(t)
	defer teardown(t)

	payer := makeAccount(0x01)
	payee := makeAccount(0x02)

	assert.Nil(t, ledger.Deposit(payer, 50), "deposit failed")

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin failed")

	err = ledger.Transfer(trx, payer, payee, 60, currency.AllowDeath)
	assert.Equal(t, fault.InsufficientFunds, err, "wrong error")
	trx.Abort()

	assert.Equal(t, uint64(50), ledger.Balance(payer), "payer balance changed")
	assert.Equal(t, uint64(0), ledger.Balance(payee), "payee balance changed")
}

func TestTransferKeepAlive(t *testing.T) {
	ledger := setup(t)
	defer teardown(t)

	payer := makeAccount(0x01)
	payee := makeAccount(0x02)

	assert.Nil(t, ledger.Deposit(payer, 50), "deposit failed")

	// would leave 5, below the minimum of 10
	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin failed")
	err = ledger.Transfer(trx, payer, payee, 45, currency.KeepAlive)
	assert.Equal(t, fault.BalanceBelowMinimum, err, "wrong error")
	trx.Abort()

	// allowed to die instead
	trx, err = storage.NewDBTransaction()
	assert.Nil(t, err, "begin failed")
	err = ledger.Transfer(trx, payer, payee, 45, currency.AllowDeath)
	assert.Nil(t, err, "transfer failed")
	assert.Nil(t, trx.Commit(), "commit failed")

	assert.Equal(t, uint64(5), ledger.Balance(payer), "payer balance mismatch")
	assert.Equal(t, uint64(45), ledger.Balance(payee), "payee balance mismatch")
}

func TestTransferOverflow(t *testing.T) {
	ledger := setup(t)
	defer teardown(t)

	payer := makeAccount(0x01)
	payee := makeAccount(0x02)

	assert.Nil(t, ledger.Deposit(payer, 100), "deposit failed")
	assert.Nil(t, ledger.Deposit(payee, math.MaxUint64-10), "deposit failed")

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin failed")
	err = ledger.Transfer(trx, payer, payee, 20, currency.AllowDeath)
	assert.Equal(t, fault.ArithmeticOverflow, err, "wrong error")
	trx.Abort()

	assert.Equal(t, uint64(100), ledger.Balance(payer), "payer balance changed")
}

func TestTransferStagedBalanceVisible(t *testing.T) {
	ledger := setup(t)
	defer teardown(t)

	payer := makeAccount(0x01)
	middle := makeAccount(0x02)
	payee := makeAccount(0x03)

	assert.Nil(t, ledger.Deposit(payer, 100), "deposit failed")

	// two chained transfers in one transaction, the second spends the
	// staged credit of the first
	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin failed")
	assert.Nil(t, ledger.Transfer(trx, payer, middle, 100, currency.AllowDeath), "first transfer failed")
	assert.Nil(t, ledger.Transfer(trx, middle, payee, 100, currency.AllowDeath), "second transfer failed")
	assert.Nil(t, trx.Commit(), "commit failed")

	assert.Equal(t, uint64(0), ledger.Balance(payer), "payer balance mismatch")
	assert.Equal(t, uint64(0), ledger.Balance(middle), "middle balance mismatch")
	assert.Equal(t, uint64(100), ledger.Balance(payee), "payee balance mismatch")
}
