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

// Burn - permanently remove a record owned by the caller
//
// a listing left behind is not cleared, see the package doc
func Burn(caller *account.Account, siteId uint64) error {
	globalData.Lock()
	defer globalData.Unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	key := ownerSiteKey(caller, siteId)
	if !trx.Has(globalData.sites, key) {
		trx.Abort()
		return fault.InvalidSiteId
	}
	trx.Delete(globalData.sites, key)

	err = trx.Commit()
	if nil != err {
		trx.Abort()
		return err
	}

	globalData.log.Infof("burned site: %d owner: %s", siteId, caller)
	emit(&SiteBurned{
		Owner:  caller,
		SiteId: siteId,
	})

	return nil
}
