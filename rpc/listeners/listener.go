// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package listeners - TLS listeners feeding connections to the RPC server
package listeners

// Listener - a serving network listener
type Listener interface {
	Serve() error
}

const (
	minConnectionCount = 1
)
