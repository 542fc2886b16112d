// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package runtime - binds the ledger and staking modules to one store
//
// balances are 64 bit; the ledger is given to staking as its
// Currency; every call is dispatched under one lock inside one store
// transaction so a rejected call leaves no trace
package runtime
