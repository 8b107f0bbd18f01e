// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package site

import (
	"github.com/bitmark-inc/sited/account"
	"github.com/bitmark-inc/sited/currency"
	"github.com/bitmark-inc/sited/fault"
	"github.com/bitmark-inc/sited/storage"
)

// Buy - purchase a listed record from its owner
//
// the record move and the balance transfer are staged in the same
// transaction, any failure leaves every pool and the ledger unchanged
//
// maxPrice protects the buyer against a price raised between quote
// and purchase; the amount charged is the listed price, not maxPrice
func Buy(caller *account.Account, owner *account.Account, siteId uint64, maxPrice uint64) error {
	globalData.Lock()
	defer globalData.Unlock()

	if caller.Equal(owner) {
		return fault.BuyFromSelf
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	ownerKey := ownerSiteKey(owner, siteId)
	packed := trx.Get(globalData.sites, ownerKey)
	if nil == packed {
		trx.Abort()
		return fault.InvalidSiteId
	}
	trx.Delete(globalData.sites, ownerKey)

	priceKey := siteIdKey(siteId)
	price, ok := trx.GetN(globalData.sitePrices, priceKey)
	if !ok {
		trx.Abort()
		return fault.NotForSale
	}
	trx.Delete(globalData.sitePrices, priceKey)

	if maxPrice < price {
		trx.Abort()
		return fault.PriceTooLow
	}

	err = globalData.ledger.Transfer(trx, caller, owner, price, currency.KeepAlive)
	if nil != err {
		trx.Abort()
		return err
	}

	trx.Put(globalData.sites, ownerSiteKey(caller, siteId), packed)

	err = trx.Commit()
	if nil != err {
		trx.Abort()
		return err
	}

	globalData.log.Infof("sold site: %d from: %s to: %s price: %d", siteId, owner, caller, price)
	emit(&SiteSold{
		OldOwner: owner,
		NewOwner: caller,
		SiteId:   siteId,
		Price:    price,
	})

	return nil
}
