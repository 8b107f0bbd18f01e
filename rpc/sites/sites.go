// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package sites - the registry and marketplace RPC surface
//
// every mutating request is signed by the submitting account; the
// signature covers the deterministic packing of the request fields so
// a request cannot be replayed as a different operation
package sites

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/sited/account"
	"github.com/bitmark-inc/sited/currency"
	"github.com/bitmark-inc/sited/fault"
	"github.com/bitmark-inc/sited/mode"
	"github.com/bitmark-inc/sited/rpc/ratelimit"
	"github.com/bitmark-inc/sited/site"
)

const (
	rateLimitSites = 200
	rateBurstSites = 100

	maximumOwnedCount = 100
)

// Sites - type for the RPC
type Sites struct {
	Log            *logger.L
	Limiter        *rate.Limiter
	IsNormalMode   func(mode.Mode) bool
	IsTestingChain func() bool
	Ledger         *currency.PoolLedger
	ReadOnly       bool
}

// New - create the service
func New(log *logger.L,
	isNormalMode func(mode.Mode) bool,
	isTestingChain func() bool,
	ledger *currency.PoolLedger,
	readOnly bool,
) *Sites {
	return &Sites{
		Log:            log,
		Limiter:        rate.NewLimiter(rateLimitSites, rateBurstSites),
		IsNormalMode:   isNormalMode,
		IsTestingChain: isTestingChain,
		Ledger:         ledger,
		ReadOnly:       readOnly,
	}
}

// common preamble for all mutating calls
func (sites *Sites) checkWrite(owner *account.Account, signature account.Signature, message []byte) error {
	if err := ratelimit.Limit(sites.Limiter); nil != err {
		return err
	}
	if sites.ReadOnly {
		return fault.NotAvailableInReadOnly
	}
	if nil == owner {
		return fault.MissingParameters
	}
	if !sites.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringStartup
	}
	if owner.IsTesting() != sites.IsTestingChain() {
		return fault.WrongNetworkForAccount
	}
	return owner.CheckSignature(message, signature)
}

// Create
// ------

// CreateArguments - signed creation request
type CreateArguments struct {
	Owner     *account.Account  `json:"owner"`
	Cid       []byte            `json:"cid"`
	Name      []byte            `json:"name"`
	Signature account.Signature `json:"signature"`
}

// CreateReply - result from create RPC
type CreateReply struct {
	SiteId uint64 `json:"siteId,string"`
}

// Create - register a new record
func (sites *Sites) Create(arguments *CreateArguments, reply *CreateReply) error {
	if nil == arguments {
		return fault.MissingParameters
	}

	message := PackCreate(arguments.Owner, arguments.Cid, arguments.Name)
	if err := sites.checkWrite(arguments.Owner, arguments.Signature, message); nil != err {
		return err
	}

	sites.Log.Infof("Sites.Create: %+v", arguments)

	siteId, err := site.Create(arguments.Owner, arguments.Cid, arguments.Name)
	if nil != err {
		return err
	}

	reply.SiteId = siteId
	return nil
}

// Modify
// ------

// ModifyArguments - signed modification request
type ModifyArguments struct {
	Owner     *account.Account  `json:"owner"`
	Cid       []byte            `json:"cid"`
	Name      []byte            `json:"name"`
	SiteId    uint64            `json:"siteId,string"`
	Signature account.Signature `json:"signature"`
}

// ModifyReply - result from modify RPC
type ModifyReply struct {
	SiteId uint64 `json:"siteId,string"`
}

// Modify - replace the content pointer of a record
func (sites *Sites) Modify(arguments *ModifyArguments, reply *ModifyReply) error {
	if nil == arguments {
		return fault.MissingParameters
	}

	message := PackModify(arguments.Owner, arguments.Cid, arguments.Name, arguments.SiteId)
	if err := sites.checkWrite(arguments.Owner, arguments.Signature, message); nil != err {
		return err
	}

	sites.Log.Infof("Sites.Modify: %+v", arguments)

	err := site.Modify(arguments.Owner, arguments.Cid, arguments.Name, arguments.SiteId)
	if nil != err {
		return err
	}

	reply.SiteId = arguments.SiteId
	return nil
}

// Burn
// ----

// BurnArguments - signed burn request
type BurnArguments struct {
	Owner     *account.Account  `json:"owner"`
	SiteId    uint64            `json:"siteId,string"`
	Signature account.Signature `json:"signature"`
}

// BurnReply - result from burn RPC
type BurnReply struct {
	SiteId uint64 `json:"siteId,string"`
}

// Burn - permanently remove a record
func (sites *Sites) Burn(arguments *BurnArguments, reply *BurnReply) error {
	if nil == arguments {
		return fault.MissingParameters
	}

	message := PackBurn(arguments.Owner, arguments.SiteId)
	if err := sites.checkWrite(arguments.Owner, arguments.Signature, message); nil != err {
		return err
	}

	sites.Log.Infof("Sites.Burn: %+v", arguments)

	err := site.Burn(arguments.Owner, arguments.SiteId)
	if nil != err {
		return err
	}

	reply.SiteId = arguments.SiteId
	return nil
}

// Listing
// -------

// ListingArguments - signed listing request
//
// a nil price delists the record
type ListingArguments struct {
	Owner     *account.Account  `json:"owner"`
	SiteId    uint64            `json:"siteId,string"`
	Price     *uint64           `json:"price,omitempty"`
	Signature account.Signature `json:"signature"`
}

// ListingReply - result from listing RPC
type ListingReply struct {
	SiteId uint64  `json:"siteId,string"`
	Price  *uint64 `json:"price,omitempty"`
}

// Listing - set or clear the sale price of a record
func (sites *Sites) Listing(arguments *ListingArguments, reply *ListingReply) error {
	if nil == arguments {
		return fault.MissingParameters
	}

	message := PackListing(arguments.Owner, arguments.SiteId, arguments.Price)
	if err := sites.checkWrite(arguments.Owner, arguments.Signature, message); nil != err {
		return err
	}

	sites.Log.Infof("Sites.Listing: %+v", arguments)

	err := site.Listing(arguments.Owner, arguments.SiteId, arguments.Price)
	if nil != err {
		return err
	}

	reply.SiteId = arguments.SiteId
	reply.Price = arguments.Price
	return nil
}

// Transfer
// --------

// TransferArguments - signed transfer request
type TransferArguments struct {
	Owner     *account.Account  `json:"owner"`
	To        *account.Account  `json:"to"`
	SiteId    uint64            `json:"siteId,string"`
	Signature account.Signature `json:"signature"`
}

// TransferReply - result from transfer RPC
type TransferReply struct {
	SiteId uint64 `json:"siteId,string"`
}

// Transfer - move a record to another owner without payment
func (sites *Sites) Transfer(arguments *TransferArguments, reply *TransferReply) error {
	if nil == arguments || nil == arguments.To {
		return fault.MissingParameters
	}

	message := PackTransfer(arguments.Owner, arguments.To, arguments.SiteId)
	if err := sites.checkWrite(arguments.Owner, arguments.Signature, message); nil != err {
		return err
	}

	if arguments.To.IsTesting() != sites.IsTestingChain() {
		return fault.WrongNetworkForAccount
	}

	sites.Log.Infof("Sites.Transfer: %+v", arguments)

	err := site.Transfer(arguments.Owner, arguments.To, arguments.SiteId)
	if nil != err {
		return err
	}

	reply.SiteId = arguments.SiteId
	return nil
}

// Buy
// ---

// BuyArguments - signed purchase request
//
// MaxPrice is the buyer's ceiling; the amount charged is the listed
// price at execution time
type BuyArguments struct {
	Owner     *account.Account  `json:"owner"` // the buyer
	Seller    *account.Account  `json:"seller"`
	SiteId    uint64            `json:"siteId,string"`
	MaxPrice  uint64            `json:"maxPrice,string"`
	Signature account.Signature `json:"signature"`
}

// BuyReply - result from buy RPC
type BuyReply struct {
	SiteId uint64 `json:"siteId,string"`
}

// Buy - purchase a listed record
func (sites *Sites) Buy(arguments *BuyArguments, reply *BuyReply) error {
	if nil == arguments || nil == arguments.Seller {
		return fault.MissingParameters
	}

	message := PackBuy(arguments.Owner, arguments.Seller, arguments.SiteId, arguments.MaxPrice)
	if err := sites.checkWrite(arguments.Owner, arguments.Signature, message); nil != err {
		return err
	}

	sites.Log.Infof("Sites.Buy: %+v", arguments)

	err := site.Buy(arguments.Owner, arguments.Seller, arguments.SiteId, arguments.MaxPrice)
	if nil != err {
		return err
	}

	reply.SiteId = arguments.SiteId
	return nil
}

// Owned
// -----

// OwnedArguments - list the records of one account
type OwnedArguments struct {
	Owner *account.Account `json:"owner"`
	Start uint64           `json:"start,string"`
	Count int              `json:"count"`
}

// OwnedReply - result of owned RPC
type OwnedReply struct {
	Data []site.OwnedRecord `json:"data"`
	Next uint64             `json:"next,string"`
}

// Owned - list records belonging to an account
func (sites *Sites) Owned(arguments *OwnedArguments, reply *OwnedReply) error {
	if nil == arguments || nil == arguments.Owner {
		return fault.MissingParameters
	}

	if err := ratelimit.LimitN(sites.Limiter, arguments.Count, maximumOwnedCount); nil != err {
		return err
	}

	records, err := site.Owned(arguments.Owner, arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	reply.Data = records
	if n := len(records); n > 0 {
		reply.Next = records[n-1].SiteId + 1
	} else {
		reply.Next = arguments.Start
	}
	return nil
}

// Balance
// -------

// BalanceArguments - query the currency balance of an account
type BalanceArguments struct {
	Owner *account.Account `json:"owner"`
}

// BalanceReply - result of balance RPC
type BalanceReply struct {
	Balance uint64 `json:"balance,string"`
}

// Balance - current balance of an account
func (sites *Sites) Balance(arguments *BalanceArguments, reply *BalanceReply) error {
	if nil == arguments || nil == arguments.Owner {
		return fault.MissingParameters
	}

	if err := ratelimit.Limit(sites.Limiter); nil != err {
		return err
	}

	reply.Balance = sites.Ledger.Balance(arguments.Owner)
	return nil
}
