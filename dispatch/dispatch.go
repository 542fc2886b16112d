// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dispatch

import (
	"errors"

	"github.com/bitmark-inc/minichain/account"
)

// Dispatcher - execute a call of type C on behalf of sender
//
// the same pre-state, sender and call must always produce the same
// result and post-state
type Dispatcher[C any] interface {
	Dispatch(sender account.ID, call C) error
}

// Reason - why a module rejected a call
type Reason string

// the reasons a module may give
const (
	DoesNotExist      = Reason("DoesNotExist")
	NotAllowed        = Reason("NotAllowed")
	InsufficientFunds = Reason("InsufficientFunds")
	Overflow          = Reason("Overflow")
)

// ModuleError - a call rejected by a module
type ModuleError struct {
	ModuleID string
	Reason   Reason
}

// NewModuleError - tag a reason with a module identifier
func NewModuleError(moduleID string, reason Reason) error {
	return ModuleError{
		ModuleID: moduleID,
		Reason:   reason,
	}
}

func (e ModuleError) Error() string {
	return e.ModuleID + ": " + string(e.Reason)
}

// Other - a failure not attributable to module logic
type Other string

func (e Other) Error() string {
	return string(e)
}

// OtherError - convert any error to Other, module errors are left
// unchanged
func OtherError(err error) error {
	if nil == err {
		return nil
	}
	var m ModuleError
	if errors.As(err, &m) {
		return err
	}
	var o Other
	if errors.As(err, &o) {
		return err
	}
	return Other(err.Error())
}

// Is - true if err is a ModuleError from moduleID with reason
func Is(err error, moduleID string, reason Reason) bool {
	var m ModuleError
	if !errors.As(err, &m) {
		return false
	}
	return m.ModuleID == moduleID && m.Reason == reason
}

// IsOther - true if err is an untagged failure
func IsOther(err error) bool {
	var o Other
	return errors.As(err, &o)
}
