// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package runtime

import (
	"github.com/bitmark-inc/minichain/account"
	"github.com/bitmark-inc/minichain/balance"
	"github.com/bitmark-inc/minichain/fault"
)

// Audit - check the ledger invariants over the whole store
//
// every free balance is zero or at least the minimum, and the sum of
// all account totals equals the total issuance
func (r *Runtime) Audit() error {
	r.Lock()
	defer r.Unlock()

	minimum := r.currency.MinimumBalance()
	sum := Balance(0)
	count := 0

	err := r.currency.Accounts(func(acct account.ID, ab AccountBalance) error {
		count += 1
		if !ab.Free.IsZero() && !balance.AtLeast(ab.Free, minimum) {
			r.log.Errorf("audit: account: %s  free: %s  below minimum: %s", acct, ab.Free, minimum)
			return fault.ErrMinimumBalanceViolated
		}
		total, ok := ab.Total()
		if !ok {
			r.log.Errorf("audit: account: %s  total overflows", acct)
			return fault.ErrIssuanceMismatch
		}
		sum, ok = sum.CheckedAdd(total)
		if !ok {
			r.log.Errorf("audit: sum of totals overflows at account: %s", acct)
			return fault.ErrIssuanceMismatch
		}
		return nil
	})
	if nil != err {
		return err
	}

	issuance := r.currency.TotalIssuance()
	if issuance != sum {
		r.log.Errorf("audit: issuance: %s  sum of %d accounts: %s", issuance, count, sum)
		return fault.ErrIssuanceMismatch
	}

	r.log.Infof("audit: %d accounts  issuance: %s", count, issuance)
	return nil
}
