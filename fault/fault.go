// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised      = ExistsError("already initialised")
	ErrChainNotSupported       = InvalidError("chain is not supported")
	ErrConfigurationNotTable   = InvalidError("configuration did not return a table")
	ErrDataDirectoryMissing    = NotFoundError("data directory is missing")
	ErrDatabaseIsNotSet        = ProcessError("database is not set")
	ErrDatabaseNewerVersion    = RecordError("database version is newer than supported")
	ErrDatabaseVersionLength   = LengthError("database version length is invalid")
	ErrInvalidAccount          = InvalidError("invalid account")
	ErrInvalidAmount           = InvalidError("invalid amount")
	ErrInvalidCallIndex        = InvalidError("invalid call index")
	ErrInvalidLoggerChannel    = InvalidError("invalid logger channel")
	ErrInvalidModuleIdentifier = InvalidError("invalid module identifier")
	ErrIssuanceMismatch        = RecordError("total issuance does not match account totals")
	ErrMinimumBalanceViolated  = RecordError("account free balance below minimum balance")
	ErrMissingParameters       = InvalidError("missing parameters")
	ErrNotPlainFileName        = InvalidError("file name must not contain a directory")
	ErrTrailingBytes           = LengthError("trailing bytes after decoded value")
	ErrTransactionInUse        = ProcessError("transaction already in use")
	ErrTransactionNotInUse     = ProcessError("transaction not in use")
	ErrUnknownCall             = InvalidError("unknown call")
	ErrUnknownCommand          = NotFoundError("unknown command")
)

// Error - the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
