// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus_test

import (
	"testing"
	"time"

	"github.com/bitmark-inc/sited/messagebus"
)

func TestQueue(t *testing.T) {
	messagebus.Flush()

	messagebus.Send("tester", "payload-one")
	messagebus.Send("tester", "payload-two")

	for _, expected := range []string{"payload-one", "payload-two"} {
		select {
		case m := <-messagebus.Chan():
			if "tester" != m.From {
				t.Errorf("origin mismatch, got: %q  expected: %q", m.From, "tester")
			}
			if expected != m.Item {
				t.Errorf("item mismatch, got: %v  expected: %q", m.Item, expected)
			}
		case <-time.After(time.Second):
			t.Fatal("queue empty")
		}
	}
}

func TestFlush(t *testing.T) {
	messagebus.Send("tester", "discard-me")
	messagebus.Flush()

	select {
	case m := <-messagebus.Chan():
		t.Fatalf("unexpected message: %v", m.Item)
	default:
	}
}
