// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package staking

import (
	"github.com/bitmark-inc/minichain/account"
)

//go:generate mockgen -source=currency.go -destination=mocks/mock_currency.go -package=mocks

// Currency - the part of a ledger that staking may use
//
// deliberately excludes minting, unreserving and call dispatch
type Currency[B any] interface {
	Transfer(sender account.ID, dest account.ID, amount B) error
	Reserve(acct account.ID, amount B) error
	FreeBalance(acct account.ID) (B, bool)
	ReservedBalance(acct account.ID) (B, bool)
}
