// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package currency - the fungible balance ledger used for settlement
//
// the marketplace only depends on the narrow Ledger interface; the
// pool backed implementation here serves the local and testing
// chains and stages its balance movements into the caller's storage
// transaction so that a failed purchase rolls the money back with
// everything else
package currency
