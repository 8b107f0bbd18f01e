// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package site

import (
	"bytes"
	"encoding/binary"

	"github.com/bitmark-inc/sited/account"
	"github.com/bitmark-inc/sited/fault"
	"github.com/bitmark-inc/sited/util"
)

// Site - a registered record: content pointer plus display name
//
// ownership and price are extrinsic, held in separate pools
type Site struct {
	Cid  []byte `json:"cid"`
	Name []byte `json:"name"`
}

// PackedSite - packed record ready for the database
type PackedSite []byte

const uint64ByteSize = 8

// Pack - pack a site record
//
// structure: varint cid length ⧺ cid ⧺ varint name length ⧺ name
func (site Site) Pack() PackedSite {
	packed := make(PackedSite, 0, 2*util.Varint64MaximumBytes+len(site.Cid)+len(site.Name))
	packed = append(packed, util.ToVarint64(uint64(len(site.Cid)))...)
	packed = append(packed, site.Cid...)
	packed = append(packed, util.ToVarint64(uint64(len(site.Name)))...)
	packed = append(packed, site.Name...)
	return packed
}

// Unpack - unpack a site record
func (packed PackedSite) Unpack() (*Site, error) {
	cid, n := unpackBytes(packed)
	if n <= 0 {
		return nil, fault.NotSitePack
	}
	name, m := unpackBytes(packed[n:])
	if m <= 0 || n+m != len(packed) {
		return nil, fault.NotSitePack
	}
	return &Site{
		Cid:  cid,
		Name: name,
	}, nil
}

// unpack one varint length prefixed field, returns bytes used or -1
func unpackBytes(buffer []byte) ([]byte, int) {
	length, used := util.FromVarint64(buffer)
	if 0 == used {
		return nil, -1
	}
	end := uint64(used) + length
	if end > uint64(len(buffer)) {
		return nil, -1
	}
	data := make([]byte, length)
	copy(data, buffer[used:end])
	return data, int(end)
}

// Equal - structural equality of records
func (site Site) Equal(other Site) bool {
	return bytes.Equal(site.Cid, other.Cid) && bytes.Equal(site.Name, other.Name)
}

// siteIdKey - the 8 byte big endian key form of a site id
func siteIdKey(siteId uint64) []byte {
	key := make([]byte, uint64ByteSize)
	binary.BigEndian.PutUint64(key, siteId)
	return key
}

// ownerSiteKey - composite record store key: owner ⧺ site id
func ownerSiteKey(owner *account.Account, siteId uint64) []byte {
	return append(owner.Bytes(), siteIdKey(siteId)...)
}
