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
)

// OwnedRecord - one record from an ownership enumeration
type OwnedRecord struct {
	SiteId uint64  `json:"siteId"`
	Site   Site    `json:"site"`
	Price  *uint64 `json:"price,omitempty"`
}

// Get - fetch one record
//
// returns nil and no error when the record does not exist under this
// owner
func Get(owner *account.Account, siteId uint64) (*Site, error) {
	globalData.Lock()
	defer globalData.Unlock()

	packed := globalData.sites.Get(ownerSiteKey(owner, siteId))
	if nil == packed {
		return nil, nil
	}
	return PackedSite(packed).Unpack()
}

// PriceOf - current listing price of a record, if listed
func PriceOf(siteId uint64) (uint64, bool) {
	globalData.Lock()
	defer globalData.Unlock()

	return globalData.sitePrices.GetN(siteIdKey(siteId))
}

// NextSiteId - the id the next creation will be assigned
func NextSiteId() uint64 {
	globalData.Lock()
	defer globalData.Unlock()

	siteId, _ := globalData.nextSiteId.GetN(nextSiteIdKey)
	return siteId
}

// Owned - enumerate records of one owner in ascending id order
//
// start is the lowest id to include, count limits the page size
func Owned(owner *account.Account, start uint64, count int) ([]OwnedRecord, error) {
	if count <= 0 {
		return nil, fault.InvalidCount
	}

	globalData.Lock()
	defer globalData.Unlock()

	ownerBytes := owner.Bytes()

	cursor := globalData.sites.NewFetchCursor()
	cursor.Seek(ownerSiteKey(owner, start))

	elements, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}

	records := make([]OwnedRecord, 0, len(elements))
	for _, element := range elements {

		// the pool is shared by all owners, stop at the first key
		// beyond this owner's range
		if len(element.Key) != len(ownerBytes)+uint64ByteSize ||
			!bytes.Equal(element.Key[:len(ownerBytes)], ownerBytes) {
			break
		}

		siteId := binary.BigEndian.Uint64(element.Key[len(ownerBytes):])

		site, err := PackedSite(element.Value).Unpack()
		if nil != err {
			return nil, err
		}

		record := OwnedRecord{
			SiteId: siteId,
			Site:   *site,
		}
		if price, ok := globalData.sitePrices.GetN(siteIdKey(siteId)); ok {
			record.Price = &price
		}
		records = append(records, record)
	}

	return records, nil
}
