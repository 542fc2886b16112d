// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package currency

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/minichain/account"
	"github.com/bitmark-inc/minichain/balance"
	"github.com/bitmark-inc/minichain/codec"
	"github.com/bitmark-inc/minichain/dispatch"
	"github.com/bitmark-inc/minichain/fault"
	"github.com/bitmark-inc/minichain/storage"
)

// names of the storage items
const (
	TotalIssuanceName = "TotalIssuance"
	BalancesMapName   = "BalancesMap"
)

// Module - the ledger bound to one store and one configuration
type Module[B balance.Value[B], PB codec.Pointer[B]] struct {
	config        Config[B]
	log           *logger.L
	totalIssuance *storage.Cell[B, PB]
	balances      *storage.Table[account.ID, AccountBalance[B, PB], *account.ID, *AccountBalance[B, PB]]
}

// New - create a ledger over store
func New[B balance.Value[B], PB codec.Pointer[B]](store storage.Store, config Config[B], log *logger.L) (*Module[B, PB], error) {
	if nil == store {
		return nil, fault.ErrDatabaseIsNotSet
	}
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	if err := config.Validate(); nil != err {
		return nil, err
	}

	return &Module[B, PB]{
		config:        config,
		log:           log,
		totalIssuance: storage.NewCell[B, PB](store, TotalIssuanceName),
		balances:      storage.NewTable[account.ID, AccountBalance[B, PB]](store, BalancesMapName),
	}, nil
}

// ModuleID - the identifier tagging this module's errors
func (m *Module[B, PB]) ModuleID() string {
	return m.config.ModuleID
}

// MinimumBalance - the configured floor
func (m *Module[B, PB]) MinimumBalance() B {
	return m.config.MinimumBalance
}

// TotalIssuance - zero if nothing was ever minted
func (m *Module[B, PB]) TotalIssuance() B {
	issuance, _ := m.totalIssuance.Get()
	return issuance
}

// Account - the full record of an account
func (m *Module[B, PB]) Account(acct account.ID) (AccountBalance[B, PB], bool) {
	return m.balances.Get(acct)
}

// Exists - true if the account has a record
func (m *Module[B, PB]) Exists(acct account.ID) bool {
	return m.balances.Exists(acct)
}

// FreeBalance - the transferable balance, false if the account does
// not exist
func (m *Module[B, PB]) FreeBalance(acct account.ID) (B, bool) {
	ab, found := m.balances.Get(acct)
	return ab.Free, found
}

// ReservedBalance - the held balance, false if the account does not
// exist
func (m *Module[B, PB]) ReservedBalance(acct account.ID) (B, bool) {
	ab, found := m.balances.Get(acct)
	return ab.Reserved, found
}

// Accounts - call f for every committed account record
func (m *Module[B, PB]) Accounts(f func(acct account.ID, ab AccountBalance[B, PB]) error) error {
	return m.balances.Map(f)
}

// Reserve - move amount from free to reserved
func (m *Module[B, PB]) Reserve(acct account.ID, amount B) error {
	ab, found := m.balances.Get(acct)
	if !found {
		return m.reject("reserve", acct, amount, dispatch.DoesNotExist)
	}

	free, reason := m.debit(ab.Free, amount)
	if "" != reason {
		return m.reject("reserve", acct, amount, reason)
	}
	reserved, ok := ab.Reserved.CheckedAdd(amount)
	if !ok {
		return m.reject("reserve", acct, amount, dispatch.Overflow)
	}

	m.balances.Set(acct, AccountBalance[B, PB]{Free: free, Reserved: reserved})
	m.log.Debugf("reserve: account: %s  amount: %s", acct, amount)
	return nil
}

// Unreserve - move amount from reserved back to free
//
// the resulting free balance must respect the floor, a stricter rule
// than a bare reserved to free move so no stored record sits below it
func (m *Module[B, PB]) Unreserve(acct account.ID, amount B) error {
	ab, found := m.balances.Get(acct)
	if !found {
		return m.reject("unreserve", acct, amount, dispatch.DoesNotExist)
	}

	reserved, ok := ab.Reserved.CheckedSub(amount)
	if !ok {
		return m.reject("unreserve", acct, amount, dispatch.InsufficientFunds)
	}
	free, ok := ab.Free.CheckedAdd(amount)
	if !ok {
		return m.reject("unreserve", acct, amount, dispatch.Overflow)
	}
	if !m.aboveFloor(free) {
		return m.reject("unreserve", acct, amount, dispatch.InsufficientFunds)
	}

	m.balances.Set(acct, AccountBalance[B, PB]{Free: free, Reserved: reserved})
	m.log.Debugf("unreserve: account: %s  amount: %s", acct, amount)
	return nil
}

// Transfer - move amount of free balance from sender to dest
//
// a new dest is created if amount reaches the minimum balance
func (m *Module[B, PB]) Transfer(sender account.ID, dest account.ID, amount B) error {
	from, found := m.balances.Get(sender)
	if !found {
		return m.reject("transfer", sender, amount, dispatch.DoesNotExist)
	}

	free, reason := m.debit(from.Free, amount)
	if "" != reason {
		return m.reject("transfer", sender, amount, reason)
	}

	if sender == dest {
		m.log.Debugf("transfer: account: %s to itself  amount: %s", sender, amount)
		return nil
	}

	to, reason := m.credit(dest, amount)
	if "" != reason {
		return m.reject("transfer", dest, amount, reason)
	}

	from.Free = free
	m.balances.Set(sender, from)
	m.balances.Set(dest, to)
	m.log.Debugf("transfer: from: %s  to: %s  amount: %s", sender, dest, amount)
	return nil
}

// TransferAll - move the sender's entire free balance to dest
//
// both accounts must already exist; the sender keeps its record and
// any reserved balance
func (m *Module[B, PB]) TransferAll(sender account.ID, dest account.ID) error {
	var zero B

	from, found := m.balances.Get(sender)
	if !found {
		return m.reject("transfer all", sender, zero, dispatch.DoesNotExist)
	}
	if !m.balances.Exists(dest) {
		return m.reject("transfer all", dest, zero, dispatch.DoesNotExist)
	}

	amount := from.Free
	if sender == dest {
		m.log.Debugf("transfer all: account: %s to itself  amount: %s", sender, amount)
		return nil
	}

	to, reason := m.credit(dest, amount)
	if "" != reason {
		return m.reject("transfer all", dest, amount, reason)
	}

	from.Free = zero
	m.balances.Set(sender, from)
	m.balances.Set(dest, to)
	m.log.Debugf("transfer all: from: %s  to: %s  amount: %s", sender, dest, amount)
	return nil
}

// Mint - create amount of new funds in dest
//
// total issuance always grows by amount, so it stays equal to the sum
// of all account totals
func (m *Module[B, PB]) Mint(sender account.ID, dest account.ID, amount B) error {
	if sender != m.config.Minter {
		return m.reject("mint", sender, amount, dispatch.NotAllowed)
	}

	to, reason := m.credit(dest, amount)
	if "" != reason {
		return m.reject("mint", dest, amount, reason)
	}

	issuance, ok := m.TotalIssuance().CheckedAdd(amount)
	if !ok {
		return m.reject("mint", dest, amount, dispatch.Overflow)
	}

	m.totalIssuance.Set(issuance)
	m.balances.Set(dest, to)
	m.log.Debugf("mint: to: %s  amount: %s  issuance: %s", dest, amount, issuance)
	return nil
}

// free balance after sending amount
func (m *Module[B, PB]) debit(free B, amount B) (B, dispatch.Reason) {
	result, ok := free.CheckedSub(amount)
	if !ok || !m.aboveFloor(result) {
		return result, dispatch.InsufficientFunds
	}
	return result, ""
}

// record of dest after receiving amount
func (m *Module[B, PB]) credit(dest account.ID, amount B) (AccountBalance[B, PB], dispatch.Reason) {
	to, found := m.balances.Get(dest)
	if !found {
		if !balance.AtLeast(amount, m.config.MinimumBalance) {
			return to, dispatch.InsufficientFunds
		}
		return AccountBalance[B, PB]{Free: amount}, ""
	}

	free, ok := to.Free.CheckedAdd(amount)
	if !ok {
		return to, dispatch.Overflow
	}
	if !balance.AtLeast(free, m.config.MinimumBalance) {
		return to, dispatch.InsufficientFunds
	}
	to.Free = free
	return to, ""
}

// a stored free balance must be zero or reach the minimum
func (m *Module[B, PB]) aboveFloor(free B) bool {
	return free.IsZero() || balance.AtLeast(free, m.config.MinimumBalance)
}

func (m *Module[B, PB]) reject(operation string, acct account.ID, amount B, reason dispatch.Reason) error {
	m.log.Warnf("%s: account: %s  amount: %s  rejected: %s", operation, acct, amount, reason)
	return dispatch.NewModuleError(m.config.ModuleID, reason)
}
