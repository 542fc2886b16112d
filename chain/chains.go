// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"strings"

	"github.com/bitmark-inc/minichain/account"
	"github.com/bitmark-inc/minichain/fault"
)

// names of all chains
const (
	Bitmark = "bitmark"
	Testing = "testing"
	Local   = "local"
)

// module identifiers shared by all chains
const (
	CurrencyModuleID = "MOD_CURRENCY"
	StakingModuleID  = "MOD_STAKING"
)

// Settings - runtime defaults of one chain
type Settings struct {
	CurrencyModuleID string
	StakingModuleID  string
	Minter           account.ID
	MinimumBalance   uint64
}

var settings = map[string]Settings{
	Bitmark: {
		CurrencyModuleID: CurrencyModuleID,
		StakingModuleID:  StakingModuleID,
		Minter:           1,
		MinimumBalance:   1000,
	},
	Testing: {
		CurrencyModuleID: CurrencyModuleID,
		StakingModuleID:  StakingModuleID,
		Minter:           1,
		MinimumBalance:   100,
	},
	Local: {
		CurrencyModuleID: CurrencyModuleID,
		StakingModuleID:  StakingModuleID,
		Minter:           42,
		MinimumBalance:   5,
	},
}

// Valid - validate a chain name
func Valid(name string) bool {
	_, ok := settings[strings.ToLower(name)]
	return ok
}

// Parameters - the defaults for a chain
func Parameters(name string) (Settings, error) {
	s, ok := settings[strings.ToLower(name)]
	if !ok {
		return Settings{}, fault.ErrChainNotSupported
	}
	return s, nil
}
