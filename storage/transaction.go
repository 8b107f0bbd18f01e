// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/bitmark-inc/sited/fault"
)

// Transaction - a single all-or-nothing unit of work
//
// writes are staged in a batch and a read-through cache; nothing
// touches the database until Commit, and Abort discards every staged
// mutation leaving the database exactly as it was
type Transaction interface {
	Begin() error
	Abort()
	Commit() error
	Put(Handle, []byte, []byte)
	PutN(Handle, []byte, uint64)
	Delete(Handle, []byte)
	Get(Handle, []byte) []byte
	GetN(Handle, []byte) (uint64, bool)
	Has(Handle, []byte) bool
}

type transactionData struct {
	sync.Mutex
	inUse     bool
	allAccess []DataAccess
}

func newTransaction(access []DataAccess) Transaction {
	return &transactionData{
		inUse:     false,
		allAccess: access,
	}
}

// Begin - take exclusive use of the shared transaction
//
// there is only one transaction for the whole database so this also
// serialises all mutating operations
func (t *transactionData) Begin() error {
	t.Lock()
	defer t.Unlock()

	if t.inUse {
		return fault.TransactionIsInUse
	}

	for _, access := range t.allAccess {
		if err := access.Begin(); nil != err {
			return err
		}
	}

	t.inUse = true
	return nil
}

// Abort - discard all staged mutations
func (t *transactionData) Abort() {
	t.Lock()
	defer t.Unlock()

	for _, access := range t.allAccess {
		access.Abort()
	}
	t.inUse = false
}

// Commit - write all staged mutations to the database
func (t *transactionData) Commit() error {
	t.Lock()
	defer t.Unlock()

	for _, access := range t.allAccess {
		if err := access.Commit(); nil != err {
			return err
		}
	}

	// release staging for the next transaction
	for _, access := range t.allAccess {
		access.Abort()
	}
	t.inUse = false
	return nil
}

func (t *transactionData) Put(h Handle, key []byte, value []byte) {
	h.put(key, value)
}

func (t *transactionData) PutN(h Handle, key []byte, value uint64) {
	h.putN(key, value)
}

func (t *transactionData) Delete(h Handle, key []byte) {
	h.remove(key)
}

func (t *transactionData) Get(h Handle, key []byte) []byte {
	return h.Get(key)
}

func (t *transactionData) GetN(h Handle, key []byte) (uint64, bool) {
	return h.GetN(key)
}

func (t *transactionData) Has(h Handle, key []byte) bool {
	return h.Has(key)
}
