// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package server - assemble the RPC services into a server
package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/sited/counter"
	"github.com/bitmark-inc/sited/currency"
	"github.com/bitmark-inc/sited/mode"
	"github.com/bitmark-inc/sited/rpc/node"
	"github.com/bitmark-inc/sited/rpc/sites"
)

// Create - register all services
func Create(log *logger.L, version string, rpcCount *counter.Counter, ledger *currency.PoolLedger, readOnly bool) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(sites.New(log, mode.Is, mode.IsTesting, ledger, readOnly))
	_ = server.Register(node.New(log, start, version, rpcCount))

	return server
}
