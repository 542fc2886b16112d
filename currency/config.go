// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package currency

import (
	"github.com/bitmark-inc/minichain/account"
	"github.com/bitmark-inc/minichain/fault"
)

// Config - values bound by the runtime
type Config[B any] struct {
	ModuleID       string     // tags every module error
	Minter         account.ID // the only sender allowed to mint
	MinimumBalance B          // floor for a non-zero free balance
}

// Validate - check that the configuration is usable
func (c Config[B]) Validate() error {
	if "" == c.ModuleID {
		return fault.ErrInvalidModuleIdentifier
	}
	return nil
}
