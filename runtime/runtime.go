// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package runtime

import (
	"errors"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/minichain/account"
	"github.com/bitmark-inc/minichain/chain"
	"github.com/bitmark-inc/minichain/counter"
	"github.com/bitmark-inc/minichain/currency"
	"github.com/bitmark-inc/minichain/dispatch"
	"github.com/bitmark-inc/minichain/fault"
	"github.com/bitmark-inc/minichain/staking"
	"github.com/bitmark-inc/minichain/storage"
)

// Runtime - the composed state machine
type Runtime struct {
	sync.Mutex

	config   Config
	log      *logger.L
	store    storage.Transactional
	currency *Ledger
	staking  *Staking
	stats    counter.Set
}

// New - bind the modules to store
//
// the store stays owned by the caller
func New(store storage.Transactional, config Config, log *logger.L) (*Runtime, error) {
	if nil == store {
		return nil, fault.ErrDatabaseIsNotSet
	}
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	if !chain.Valid(config.Chain) {
		return nil, fault.ErrChainNotSupported
	}

	ledger, err := currency.New[Balance, *Balance](store, currency.Config[Balance]{
		ModuleID:       config.CurrencyModuleID,
		Minter:         config.Minter,
		MinimumBalance: config.MinimumBalance,
	}, logger.New("currency"))
	if nil != err {
		return nil, err
	}

	stake, err := staking.New[Balance](staking.Config[Balance]{
		ModuleID: config.StakingModuleID,
		Currency: ledger,
	}, logger.New("staking"))
	if nil != err {
		return nil, err
	}

	log.Infof("chain: %s  currency: %s  staking: %s  minter: %s  minimum balance: %s",
		config.Chain, config.CurrencyModuleID, config.StakingModuleID, config.Minter, config.MinimumBalance)

	return &Runtime{
		config:   config,
		log:      log,
		store:    store,
		currency: ledger,
		staking:  stake,
	}, nil
}

// Config - the bound configuration
func (r *Runtime) Config() Config {
	return r.config
}

// Dispatch - execute one call on behalf of sender
//
// module errors are returned unchanged; on any error the store is
// left exactly as it was before the call
func (r *Runtime) Dispatch(sender account.ID, call Call) error {
	r.Lock()
	defer r.Unlock()

	r.stats.Dispatched.Increment()

	if err := r.store.Begin(); nil != err {
		r.log.Errorf("dispatch: begin error: %s", err)
		r.stats.Failed.Increment()
		return dispatch.OtherError(err)
	}

	// a panic out of forward must not leave the transaction open
	defer func() {
		if r.store.InUse() {
			r.log.Criticalf("dispatch: sender: %s  transaction abandoned", sender)
			r.store.Abort()
		}
	}()

	err := r.forward(sender, call)
	if nil != err {
		r.store.Abort()
		var m dispatch.ModuleError
		if errors.As(err, &m) {
			r.stats.Rejected.Increment()
		} else {
			r.stats.Failed.Increment()
		}
		return err
	}

	if err := r.store.Commit(); nil != err {
		fault.Criticalf("dispatch: sender: %s  commit error: %s", sender, err)
		r.store.Abort()
		r.stats.Failed.Increment()
		return dispatch.OtherError(err)
	}

	r.stats.Succeeded.Increment()
	return nil
}

// DispatchEncoded - decode a call and dispatch it
//
// a call that cannot be decoded is reported as dispatch.Other
func (r *Runtime) DispatchEncoded(sender account.ID, data []byte) error {
	call, err := DecodeCall(data)
	if nil != err {
		r.log.Warnf("decode call: %x  error: %s", data, err)
		return dispatch.OtherError(err)
	}
	return r.Dispatch(sender, call)
}

func (r *Runtime) forward(sender account.ID, call Call) error {
	switch c := call.(type) {
	case CurrencyCall:
		return r.currency.Dispatch(sender, c.Call)
	case StakingCall:
		return r.staking.Dispatch(sender, c.Call)
	default:
		r.log.Errorf("dispatch: sender: %s  unknown call: %T", sender, call)
		return dispatch.Other(fault.ErrUnknownCall.Error())
	}
}

// FreeBalance - false if the account does not exist
func (r *Runtime) FreeBalance(acct account.ID) (Balance, bool) {
	r.Lock()
	defer r.Unlock()
	return r.currency.FreeBalance(acct)
}

// ReservedBalance - false if the account does not exist
func (r *Runtime) ReservedBalance(acct account.ID) (Balance, bool) {
	r.Lock()
	defer r.Unlock()
	return r.currency.ReservedBalance(acct)
}

// Account - the full record of an account
func (r *Runtime) Account(acct account.ID) (AccountBalance, bool) {
	r.Lock()
	defer r.Unlock()
	return r.currency.Account(acct)
}

// TotalIssuance - all funds ever minted
func (r *Runtime) TotalIssuance() Balance {
	r.Lock()
	defer r.Unlock()
	return r.currency.TotalIssuance()
}

// Accounts - call f for every account in key order
func (r *Runtime) Accounts(f func(acct account.ID, ab AccountBalance) error) error {
	r.Lock()
	defer r.Unlock()
	return r.currency.Accounts(f)
}

// Statistics - outcome counts of all dispatched calls
func (r *Runtime) Statistics() counter.Snapshot {
	return r.stats.Snapshot()
}
