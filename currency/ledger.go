// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package currency

import (
	"math"

	"github.com/bitmark-inc/sited/account"
	"github.com/bitmark-inc/sited/fault"
	"github.com/bitmark-inc/sited/storage"
)

// ExistenceRequirement - whether a transfer may empty the payer below
// the existential deposit
type ExistenceRequirement int

// all possible requirements
const (
	KeepAlive  ExistenceRequirement = iota
	AllowDeath ExistenceRequirement = iota
)

// Ledger - the transfer interface the marketplace depends on
//
// balance movements must be staged into the supplied transaction so
// that they commit or roll back together with the record mutations
type Ledger interface {
	Transfer(trx storage.Transaction, from *account.Account, to *account.Account, amount uint64, requirement ExistenceRequirement) error
}

// PoolLedger - balances held in a storage pool
type PoolLedger struct {
	pool               storage.Handle
	existentialDeposit uint64
}

// New - create a ledger over a balance pool
func New(pool storage.Handle, existentialDeposit uint64) *PoolLedger {
	return &PoolLedger{
		pool:               pool,
		existentialDeposit: existentialDeposit,
	}
}

// Transfer - move amount from one account to another
//
// staged into trx; nothing is persisted until the caller commits
func (l *PoolLedger) Transfer(trx storage.Transaction, from *account.Account, to *account.Account, amount uint64, requirement ExistenceRequirement) error {

	fromKey := from.Bytes()
	toKey := to.Bytes()

	fromBalance, _ := trx.GetN(l.pool, fromKey) // absent record reads as zero
	if fromBalance < amount {
		return fault.InsufficientFunds
	}

	remaining := fromBalance - amount
	if KeepAlive == requirement && remaining < l.existentialDeposit {
		return fault.BalanceBelowMinimum
	}

	toBalance, _ := trx.GetN(l.pool, toKey)
	if toBalance > math.MaxUint64-amount {
		return fault.ArithmeticOverflow
	}

	trx.PutN(l.pool, fromKey, remaining)
	trx.PutN(l.pool, toKey, toBalance+amount)

	return nil
}

// Deposit - credit an account outside any transaction
//
// only for funding accounts on the local and testing chains
func (l *PoolLedger) Deposit(owner *account.Account, amount uint64) error {
	key := owner.Bytes()
	balance, _ := l.pool.GetN(key)
	if balance > math.MaxUint64-amount {
		return fault.ArithmeticOverflow
	}
	l.pool.PutN(key, balance+amount)
	return nil
}

// Balance - current balance of an account
//
// reads through the shared staging cache, so a balance staged by an
// in-flight purchase is visible before that purchase commits or
// aborts; only committed state is ever persisted
func (l *PoolLedger) Balance(owner *account.Account) uint64 {
	balance, _ := l.pool.GetN(owner.Bytes())
	return balance
}
