// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - read the Lua configuration file
//
// the file is executed as a Lua script and must leave a single table
// on the stack; its fields are mapped onto the Configuration
// structure with sensible defaults for everything not set
package configuration
