// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - a one-send-many-receive queue for domain events
//
// events are queued in operation order; exactly one event is sent per
// successful state-changing operation and none for a failed one
package messagebus
