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

// Modify - replace the content pointer of an existing record
//
// the name parameter is accepted but ignored, the stored display name
// never changes after creation; the update is announced with a created
// event carrying the new record state; see the package doc
func Modify(caller *account.Account, cid []byte, name []byte, siteId uint64) error {
	globalData.Lock()
	defer globalData.Unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	key := ownerSiteKey(caller, siteId)
	packed := trx.Get(globalData.sites, key)
	if nil == packed {
		trx.Abort()
		return fault.InvalidSiteId
	}

	site, err := PackedSite(packed).Unpack()
	if nil != err {
		trx.Abort()
		return err
	}

	site.Cid = cid
	trx.Put(globalData.sites, key, site.Pack())

	err = trx.Commit()
	if nil != err {
		trx.Abort()
		return err
	}

	globalData.log.Infof("modified site: %d owner: %s", siteId, caller)
	emit(&SiteCreated{
		Owner:  caller,
		SiteId: siteId,
		Site:   *site,
	})

	return nil
}
