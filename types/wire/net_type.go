// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2021 The nmcd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"fmt"
)

// NmcNet represents which nmc network a message belongs to.
type NmcNet uint32

// Constants used to indicate the message network.  They can also be used to
// seek to the next message when a stream's state is unknown, but this package
// does not provide that functionality since it's generally a better idea to
// simply disconnect clients that are misbehaving over TCP.
const (
	// MainNet represents the main nmc network.
	MainNet NmcNet = 0xfeb4bef9

	// TestNet3 represents the test network (version 3).
	TestNet3 NmcNet = 0xfeb5bffa

	// RegTestNet represents the regression test network.
	RegTestNet NmcNet = 0xdab5bffa
)

// bnStrings is a map of nmc networks back to their constant names for
// pretty printing.
var bnStrings = map[NmcNet]string{
	MainNet:    "MainNet",
	TestNet3:   "TestNet3",
	RegTestNet: "RegTestNet",
}

// String returns the NmcNet in human-readable form.
func (n NmcNet) String() string {
	if s, ok := bnStrings[n]; ok {
		return s
	}

	return fmt.Sprintf("Unknown NmcNet (%d)", uint32(n))
}
