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

// Transfer - move a record to another owner without payment
//
// a transfer to the current owner validates the record then does
// nothing, no mutation and no event; an existing listing follows the
// record to the new owner, see the package doc
func Transfer(caller *account.Account, to *account.Account, siteId uint64) error {
	globalData.Lock()
	defer globalData.Unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	fromKey := ownerSiteKey(caller, siteId)
	packed := trx.Get(globalData.sites, fromKey)
	if nil == packed {
		trx.Abort()
		return fault.InvalidSiteId
	}

	if caller.Equal(to) {
		trx.Abort()
		return nil
	}

	trx.Delete(globalData.sites, fromKey)
	trx.Put(globalData.sites, ownerSiteKey(to, siteId), packed)

	err = trx.Commit()
	if nil != err {
		trx.Abort()
		return err
	}

	globalData.log.Infof("transferred site: %d from: %s to: %s", siteId, caller, to)
	emit(&SiteTransferred{
		From:   caller,
		To:     to,
		SiteId: siteId,
	})

	return nil
}
