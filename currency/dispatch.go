// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package currency

import (
	"github.com/bitmark-inc/minichain/account"
	"github.com/bitmark-inc/minichain/dispatch"
	"github.com/bitmark-inc/minichain/fault"
)

// Dispatch - execute one ledger call on behalf of sender
func (m *Module[B, PB]) Dispatch(sender account.ID, call Call) error {
	switch c := call.(type) {
	case Mint[B]:
		return m.Mint(sender, c.Dest, c.Amount)
	case Transfer[B]:
		return m.Transfer(sender, c.Dest, c.Amount)
	case TransferAll[B]:
		return m.TransferAll(sender, c.Dest)
	default:
		m.log.Errorf("dispatch: sender: %s  unknown call: %T", sender, call)
		return dispatch.Other(fault.ErrUnknownCall.Error())
	}
}
