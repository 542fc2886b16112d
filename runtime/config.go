// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package runtime

import (
	"github.com/bitmark-inc/minichain/account"
	"github.com/bitmark-inc/minichain/balance"
	"github.com/bitmark-inc/minichain/chain"
	"github.com/bitmark-inc/minichain/currency"
	"github.com/bitmark-inc/minichain/staking"
)

// Balance - the balance type of this runtime
type Balance = balance.U64

// concrete module types
type (
	AccountBalance = currency.AccountBalance[Balance, *Balance]
	Ledger         = currency.Module[Balance, *Balance]
	Staking        = staking.Module[Balance]
)

// concrete call types
type (
	Mint        = currency.Mint[Balance]
	Transfer    = currency.Transfer[Balance]
	TransferAll = currency.TransferAll[Balance]
	Bond        = staking.Bond[Balance]
)

// Config - values bound into the modules
type Config struct {
	Chain            string
	CurrencyModuleID string
	StakingModuleID  string
	Minter           account.ID
	MinimumBalance   Balance
}

// DefaultConfig - the configuration a chain starts with
func DefaultConfig(name string) (Config, error) {
	s, err := chain.Parameters(name)
	if nil != err {
		return Config{}, err
	}
	return Config{
		Chain:            name,
		CurrencyModuleID: s.CurrencyModuleID,
		StakingModuleID:  s.StakingModuleID,
		Minter:           s.Minter,
		MinimumBalance:   Balance(s.MinimumBalance),
	}, nil
}
