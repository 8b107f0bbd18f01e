// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ⧺             = concatenation of byte data
// 3. site id       = big endian uint64 (8 bytes)
// 4. owner         = account flags ⧺ public key (33 bytes)
// 5. price/balance = big endian uint64 (8 bytes)
//
// Sites:
//
//   S ⧺ owner ⧺ site id      - site records keyed by current owner
//                              data: varint cid length ⧺ cid ⧺ varint name length ⧺ name
//
// Marketplace:
//
//   P ⧺ site id              - active listings
//                              data: price
//
//   I                        - next site id to allocate (single record, fixed key)
//                              data: next id
//
// Currency (local ledger only):
//
//   Q ⧺ owner                - account balance
//                              data: balance
//
// Testing:
//
//   Z ⧺ key                  - testing data
package storage
