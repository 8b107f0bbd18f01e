// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sites

import (
	"encoding/binary"

	"github.com/bitmark-inc/sited/account"
	"github.com/bitmark-inc/sited/util"
)

// operation tags for signature messages; every operation signs a
// distinct message so a signed request cannot be replayed as another
// operation
const (
	createTag byte = iota
	modifyTag
	burnTag
	listingTag
	transferTag
	buyTag
)

func packBytes(buffer []byte, data []byte) []byte {
	buffer = append(buffer, util.ToVarint64(uint64(len(data)))...)
	return append(buffer, data...)
}

func packUint64(buffer []byte, value uint64) []byte {
	scratch := make([]byte, 8)
	binary.BigEndian.PutUint64(scratch, value)
	return append(buffer, scratch...)
}

func packAccount(buffer []byte, owner *account.Account) []byte {
	if nil == owner {
		return append(buffer, 0)
	}
	return packBytes(buffer, owner.Bytes())
}

// PackCreate - the signed message of a creation request
func PackCreate(owner *account.Account, cid []byte, name []byte) []byte {
	buffer := []byte{createTag}
	buffer = packAccount(buffer, owner)
	buffer = packBytes(buffer, cid)
	return packBytes(buffer, name)
}

// PackModify - the signed message of a modification request
func PackModify(owner *account.Account, cid []byte, name []byte, siteId uint64) []byte {
	buffer := []byte{modifyTag}
	buffer = packAccount(buffer, owner)
	buffer = packBytes(buffer, cid)
	buffer = packBytes(buffer, name)
	return packUint64(buffer, siteId)
}

// PackBurn - the signed message of a burn request
func PackBurn(owner *account.Account, siteId uint64) []byte {
	buffer := []byte{burnTag}
	buffer = packAccount(buffer, owner)
	return packUint64(buffer, siteId)
}

// PackListing - the signed message of a listing request
func PackListing(owner *account.Account, siteId uint64, price *uint64) []byte {
	buffer := []byte{listingTag}
	buffer = packAccount(buffer, owner)
	buffer = packUint64(buffer, siteId)
	if nil == price {
		return append(buffer, 0)
	}
	buffer = append(buffer, 1)
	return packUint64(buffer, *price)
}

// PackTransfer - the signed message of a transfer request
func PackTransfer(owner *account.Account, to *account.Account, siteId uint64) []byte {
	buffer := []byte{transferTag}
	buffer = packAccount(buffer, owner)
	buffer = packAccount(buffer, to)
	return packUint64(buffer, siteId)
}

// PackBuy - the signed message of a purchase request
func PackBuy(buyer *account.Account, seller *account.Account, siteId uint64, maxPrice uint64) []byte {
	buffer := []byte{buyTag}
	buffer = packAccount(buffer, buyer)
	buffer = packAccount(buffer, seller)
	buffer = packUint64(buffer, siteId)
	return packUint64(buffer, maxPrice)
}
