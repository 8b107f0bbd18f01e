// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheGetMissing(t *testing.T) {
	c := newCache()

	value, _, found := c.Get("missing")
	assert.Equal(t, false, found, "unexpected staged record")
	assert.Nil(t, value, "unexpected staged value")
}

func TestCacheSetGet(t *testing.T) {
	c := newCache()

	c.Set(dbPut, "key", []byte("value"))

	value, op, found := c.Get("key")
	assert.Equal(t, true, found, "missing staged record")
	assert.Equal(t, dbPut, op, "wrong staged operation")
	assert.Equal(t, []byte("value"), value, "wrong staged value")
}

// a staged delete must be visible, not fall through to the database
func TestCacheStagedDelete(t *testing.T) {
	c := newCache()

	c.Set(dbPut, "key", []byte("value"))
	c.Set(dbDelete, "key", []byte{})

	value, op, found := c.Get("key")
	assert.Equal(t, true, found, "staged delete not observed")
	assert.Equal(t, dbDelete, op, "wrong staged operation")
	assert.Nil(t, value, "staged delete returned a value")
}

func TestCacheClear(t *testing.T) {
	c := newCache()

	c.Set(dbPut, "key-one", []byte("one"))
	c.Set(dbDelete, "key-two", []byte{})
	c.Clear()

	_, _, found := c.Get("key-one")
	assert.Equal(t, false, found, "record survived clear")
	_, _, found = c.Get("key-two")
	assert.Equal(t, false, found, "record survived clear")
}
