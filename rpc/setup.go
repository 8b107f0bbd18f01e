// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - the client RPC entry point
package rpc

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/sited/counter"
	"github.com/bitmark-inc/sited/currency"
	"github.com/bitmark-inc/sited/fault"
	"github.com/bitmark-inc/sited/rpc/certificate"
	"github.com/bitmark-inc/sited/rpc/listeners"
	"github.com/bitmark-inc/sited/rpc/server"
)

const (
	tlsName = "client_rpc"
)

// counter for the number of active RPC connections
var connectionCountRPC counter.Counter

// globals
var globalData struct {
	sync.RWMutex

	log *logger.L

	// set once during initialise
	initialised bool
}

// Initialise - start the RPC listeners
func Initialise(rpcConfiguration *listeners.RPCConfiguration, version string, ledger *currency.PoolLedger, readOnly bool) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	tlsConfig, certificateFingerprint, err := certificate.Get(log, tlsName, rpcConfiguration.Certificate, rpcConfiguration.PrivateKey)
	if nil != err {
		return err
	}

	rpcListener, err := listeners.NewRPC(
		rpcConfiguration,
		log,
		&connectionCountRPC,
		server.Create(log, version, &connectionCountRPC, ledger, readOnly),
		tlsConfig,
		certificateFingerprint,
	)
	if nil != err {
		return err
	}

	err = rpcListener.Serve()
	if nil != err {
		return err
	}

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop all background tasks
func Finalise() error {

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// ConnectionCount - number of active RPC connections
func ConnectionCount() uint64 {
	return connectionCountRPC.Uint64()
}
