// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package site

import (
	"github.com/bitmark-inc/sited/account"
	"github.com/bitmark-inc/sited/messagebus"
)

// origin tag for all events from this package
const eventOrigin = "site"

// SiteCreated - a record was created, or announces the current state
// after a modification
type SiteCreated struct {
	Owner  *account.Account
	SiteId uint64
	Site   Site
}

// SiteTransferred - ownership moved without payment
type SiteTransferred struct {
	From   *account.Account
	To     *account.Account
	SiteId uint64
}

// SiteBurned - a record was permanently removed
type SiteBurned struct {
	Owner  *account.Account
	SiteId uint64
}

// SitePriceUpdated - a listing was created, changed or removed
//
// nil price means the record was delisted
type SitePriceUpdated struct {
	Owner  *account.Account
	SiteId uint64
	Price  *uint64
}

// SiteSold - a purchase settled
type SiteSold struct {
	OldOwner *account.Account
	NewOwner *account.Account
	SiteId   uint64
	Price    uint64
}

// queue an event; only called after the transaction has committed
func emit(item interface{}) {
	messagebus.Send(eventOrigin, item)
}
