// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package staking - bond funds by reserving them in a ledger
//
// the module keeps no storage; everything goes through the Currency
// interface, which the runtime satisfies with the ledger module
package staking
