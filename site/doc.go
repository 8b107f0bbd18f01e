// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package site - the registry and marketplace state machine
//
// a site is a content pointer and a display name; it is identified
// by a monotonically allocated id that stays with the record for its
// whole life, only the owner key changes on transfer or sale
//
// storage layout (see storage/doc.go):
//
//	Sites:      owner ⧺ site id → packed record   (exactly one owner per live id)
//	SitePrices: site id → price                   (present = listed for sale)
//	NextSiteId: next id to allocate
//
// every operation runs inside a single storage transaction; a
// failure at any step leaves all pools and the currency ledger
// byte-for-byte unchanged and emits no event
//
// known quirks kept for compatibility with the original marketplace
// behaviour:
//  1. Burn and Transfer do not clear a listing, so a stale price can
//     outlive the record or follow it to the next owner
//  2. Modify accepts a display name but ignores it, and announces the
//     update with a created event carrying the new record state
package site
