// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package site

import (
	"github.com/bitmark-inc/sited/account"
	"github.com/bitmark-inc/sited/fault"
	"github.com/bitmark-inc/sited/storage"
)

// Listing - set or clear the sale price of a record owned by the caller
//
// a non-nil price lists the record, nil delists it; both are applied
// unconditionally so repeating the same request succeeds and announces
// the unchanged state again
func Listing(caller *account.Account, siteId uint64, price *uint64) error {
	globalData.Lock()
	defer globalData.Unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	if !trx.Has(globalData.sites, ownerSiteKey(caller, siteId)) {
		trx.Abort()
		return fault.NotOwner
	}

	priceKey := siteIdKey(siteId)
	if nil == price {
		trx.Delete(globalData.sitePrices, priceKey)
	} else {
		trx.PutN(globalData.sitePrices, priceKey, *price)
	}

	err = trx.Commit()
	if nil != err {
		trx.Abort()
		return err
	}

	if nil == price {
		globalData.log.Infof("delisted site: %d owner: %s", siteId, caller)
	} else {
		globalData.log.Infof("listed site: %d owner: %s price: %d", siteId, caller, *price)
	}
	emit(&SitePriceUpdated{
		Owner:  caller,
		SiteId: siteId,
		Price:  price,
	})

	return nil
}
