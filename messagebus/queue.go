// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

// internal constants
const (
	queueSize = 1000
)

// Message - item on the queue tagged with its origin
type Message struct {
	From string
	Item interface{}
}

// for queueing data
var queue = make(chan Message, queueSize)

// Send - queue an event
func Send(from string, item interface{}) {
	queue <- Message{
		From: from,
		Item: item,
	}
}

// Chan - channel to read from
func Chan() <-chan Message {
	return queue
}

// Flush - discard all queued events
func Flush() {
draining:
	for {
		select {
		case <-queue:
		default:
			break draining
		}
	}
}
