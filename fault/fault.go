// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type (
	ExistsError   GenericError
	InvalidError  GenericError
	LengthError   GenericError
	NotFoundError GenericError
	ProcessError  GenericError
)

// common errors - keep in alphabetic order
var (
	AlreadyInitialised           = ExistsError("already initialised")
	ArithmeticOverflow           = ProcessError("arithmetic overflow")
	BalanceBelowMinimum          = ProcessError("balance below minimum")
	BuyFromSelf                  = InvalidError("buy from self")
	CannotDecodeAccount          = InvalidError("cannot decode account")
	CertificateFileAlreadyExists = ExistsError("certificate file already exists")
	ChecksumMismatch             = ProcessError("checksum mismatch")
	InsufficientFunds            = ProcessError("insufficient funds")
	InvalidChain                 = InvalidError("invalid chain")
	InvalidCount                 = InvalidError("invalid count")
	InvalidCursor                = InvalidError("invalid cursor")
	InvalidIpAddress             = InvalidError("invalid IP Address")
	InvalidKeyLength             = InvalidError("invalid key length")
	InvalidSignature             = InvalidError("invalid signature")
	InvalidSiteId                = NotFoundError("invalid site id")
	InvalidStructPointer         = InvalidError("invalid struct pointer")
	MissingParameters            = LengthError("missing parameters")
	NotAvailableDuringStartup    = ProcessError("not available during startup")
	NotAvailableInReadOnly       = InvalidError("not available in read only mode")
	NotForSale                   = NotFoundError("not for sale")
	NotInitialised               = NotFoundError("not initialised")
	NotOwner                     = InvalidError("not the current owner")
	NotPublicKey                 = InvalidError("not a public key")
	NotSitePack                  = InvalidError("not a site pack")
	PriceTooLow                  = InvalidError("price too low")
	RateLimiting                 = ProcessError("rate limiting")
	TransactionIsInUse           = ProcessError("transaction is already in use")
	WrongNetworkForAccount       = InvalidError("account not valid for this network")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// IsErrExists - determine the class of an error
func IsErrExists(e error) bool { _, ok := e.(ExistsError); return ok }

// IsErrInvalid - determine the class of an error
func IsErrInvalid(e error) bool { _, ok := e.(InvalidError); return ok }

// IsErrLength - determine the class of an error
func IsErrLength(e error) bool { _, ok := e.(LengthError); return ok }

// IsErrNotFound - determine the class of an error
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }

// IsErrProcess - determine the class of an error
func IsErrProcess(e error) bool { _, ok := e.(ProcessError); return ok }
