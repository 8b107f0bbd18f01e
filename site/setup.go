// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package site

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/sited/currency"
	"github.com/bitmark-inc/sited/fault"
	"github.com/bitmark-inc/sited/storage"
)

// Handles - the storage pools used by this package
type Handles struct {
	Sites      storage.Handle
	SitePrices storage.Handle
	NextSiteId storage.Handle
}

// the next site id record uses a fixed empty key, the pool prefix
// alone names it
var nextSiteIdKey = []byte{}

// globals
var globalData struct {
	sync.Mutex // each operation is a single serialised unit of work

	log        *logger.L
	sites      storage.Handle
	sitePrices storage.Handle
	nextSiteId storage.Handle
	ledger     currency.Ledger

	// set once during initialise
	initialised bool
}

// Initialise - connect the state machine to its pools and ledger
func Initialise(handles Handles, ledger currency.Ledger) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("site")
	globalData.log.Info("starting…")

	globalData.sites = handles.Sites
	globalData.sitePrices = handles.SitePrices
	globalData.nextSiteId = handles.NextSiteId
	globalData.ledger = ledger

	globalData.initialised = true

	return nil
}

// Finalise - shut down the state machine
func Finalise() error {
	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.initialised = false

	return nil
}
