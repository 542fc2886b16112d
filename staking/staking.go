// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package staking

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/minichain/account"
	"github.com/bitmark-inc/minichain/dispatch"
	"github.com/bitmark-inc/minichain/fault"
)

// Config - values bound by the runtime
type Config[B any] struct {
	ModuleID string
	Currency Currency[B]
}

// Module - staking bound to a ledger
type Module[B any] struct {
	config Config[B]
	log    *logger.L
}

// New - create the staking module
func New[B any](config Config[B], log *logger.L) (*Module[B], error) {
	if "" == config.ModuleID {
		return nil, fault.ErrInvalidModuleIdentifier
	}
	if nil == config.Currency {
		return nil, fault.ErrMissingParameters
	}
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	return &Module[B]{
		config: config,
		log:    log,
	}, nil
}

// ModuleID - the identifier tagging this module's errors
func (m *Module[B]) ModuleID() string {
	return m.config.ModuleID
}

// Bond - reserve amount of the sender's free balance
//
// every ledger error, including an unknown sender, is returned as is
// and so carries the ledger's module identifier
func (m *Module[B]) Bond(sender account.ID, amount B) error {
	if err := m.config.Currency.Reserve(sender, amount); nil != err {
		m.log.Warnf("bond: account: %s  amount: %v  error: %s", sender, amount, err)
		return err
	}

	m.log.Debugf("bond: account: %s  amount: %v", sender, amount)
	return nil
}

// Dispatch - execute one staking call on behalf of sender
func (m *Module[B]) Dispatch(sender account.ID, call Call) error {
	switch c := call.(type) {
	case Bond[B]:
		return m.Bond(sender, c.Amount)
	default:
		m.log.Errorf("dispatch: sender: %s  unknown call: %T", sender, call)
		return dispatch.Other(fault.ErrUnknownCall.Error())
	}
}
