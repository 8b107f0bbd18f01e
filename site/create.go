// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package site

import (
	"math"

	"github.com/bitmark-inc/sited/account"
	"github.com/bitmark-inc/sited/fault"
	"github.com/bitmark-inc/sited/storage"
)

// Create - register a new site record owned by the caller
//
// returns the freshly allocated site id
func Create(caller *account.Account, cid []byte, name []byte) (uint64, error) {
	globalData.Lock()
	defer globalData.Unlock()

	log := globalData.log

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return 0, err
	}

	siteId, err := allocateSiteId(trx)
	if nil != err {
		trx.Abort()
		return 0, err
	}

	site := Site{
		Cid:  cid,
		Name: name,
	}
	trx.Put(globalData.sites, ownerSiteKey(caller, siteId), site.Pack())

	// ids are never reused, but make sure a fresh id cannot carry a
	// price left over from a corrupted store
	trx.Delete(globalData.sitePrices, siteIdKey(siteId))

	err = trx.Commit()
	if nil != err {
		trx.Abort()
		return 0, err
	}

	log.Infof("created site: %d owner: %s", siteId, caller)
	emit(&SiteCreated{
		Owner:  caller,
		SiteId: siteId,
		Site:   site,
	})

	return siteId, nil
}

// allocate the next site id and stage the incremented counter
//
// the counter only ever moves forward, a burned record never frees
// its id
func allocateSiteId(trx storage.Transaction) (uint64, error) {
	siteId, _ := trx.GetN(globalData.nextSiteId, nextSiteIdKey)
	if math.MaxUint64 == siteId {
		return 0, fault.ArithmeticOverflow
	}
	trx.PutN(globalData.nextSiteId, nextSiteIdKey, siteId+1)
	return siteId, nil
}
