// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package staking_test

import (
	"fmt"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/minichain/account"
	"github.com/bitmark-inc/minichain/balance"
	"github.com/bitmark-inc/minichain/currency"
	"github.com/bitmark-inc/minichain/dispatch"
	"github.com/bitmark-inc/minichain/fault"
	"github.com/bitmark-inc/minichain/staking"
	"github.com/bitmark-inc/minichain/staking/mocks"
	"github.com/bitmark-inc/minichain/storage"
)

const (
	stakingID  = "MOD_STAKING"
	currencyID = "MOD_CURRENCY"
	minter     = account.ID(42)
	sender     = account.ID(7)
)

var _ staking.Currency[balance.U64] = (*currency.Module[balance.U64, *balance.U64])(nil)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "staking-testing")
	if nil != err {
		panic(fmt.Sprintf("temporary directory failed: %s", err))
	}

	logging := logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	if err := logger.Initialise(logging); nil != err {
		panic(fmt.Sprintf("logger initialization failed: %s", err))
	}

	rc := m.Run()

	logger.Finalise()
	_ = os.RemoveAll(dir)
	os.Exit(rc)
}

func setupMock(t *testing.T) (*staking.Module[balance.U64], *mocks.MockCurrency[balance.U64], *gomock.Controller) {
	ctl := gomock.NewController(t)
	c := mocks.NewMockCurrency[balance.U64](ctl)

	m, err := staking.New[balance.U64](staking.Config[balance.U64]{
		ModuleID: stakingID,
		Currency: c,
	}, logger.New("staking"))
	require.Nil(t, err, "staking.New")
	return m, c, ctl
}

func TestNewValidates(t *testing.T) {
	_, err := staking.New[balance.U64](staking.Config[balance.U64]{ModuleID: stakingID}, logger.New("staking"))
	assert.Equal(t, fault.ErrMissingParameters, err, "missing currency")

	_, err = staking.New[balance.U64](staking.Config[balance.U64]{}, logger.New("staking"))
	assert.Equal(t, fault.ErrInvalidModuleIdentifier, err, "missing module id")
}

func TestBondReserves(t *testing.T) {
	m, c, ctl := setupMock(t)
	defer ctl.Finish()

	c.EXPECT().Reserve(sender, balance.U64(20)).Return(nil).Times(1)

	err := m.Bond(sender, 20)
	assert.Nil(t, err, "bond")
}

func TestBondUnknownAccount(t *testing.T) {
	m, c, ctl := setupMock(t)
	defer ctl.Finish()

	missing := dispatch.NewModuleError(currencyID, dispatch.DoesNotExist)
	c.EXPECT().FreeBalance(gomock.Any()).Times(0)
	c.EXPECT().Reserve(sender, balance.U64(20)).Return(missing).Times(1)

	err := m.Bond(sender, 20)
	assert.Equal(t, dispatch.ModuleError{ModuleID: currencyID, Reason: dispatch.DoesNotExist}, err, "wrong error")
	assert.False(t, dispatch.Is(err, stakingID, dispatch.DoesNotExist), "tagged with the staking identifier")
}

func TestBondReturnsLedgerErrorUnchanged(t *testing.T) {
	m, c, ctl := setupMock(t)
	defer ctl.Finish()

	ledgerError := dispatch.NewModuleError(currencyID, dispatch.InsufficientFunds)
	c.EXPECT().Reserve(sender, balance.U64(1)).Return(ledgerError).Times(1)

	err := m.Bond(sender, 1)
	assert.Equal(t, ledgerError, err, "error was changed")
}

func TestDispatch(t *testing.T) {
	m, c, ctl := setupMock(t)
	defer ctl.Finish()

	c.EXPECT().Reserve(sender, balance.U64(50)).Return(nil).Times(1)

	assert.Nil(t, m.Dispatch(sender, staking.Bond[balance.U64]{Amount: 50}), "bond")

	// a bond of another balance type is not this module's call
	err := m.Dispatch(sender, staking.Bond[balance.U256]{})
	assert.True(t, dispatch.IsOther(err), "foreign call accepted")
}

func TestCallCodec(t *testing.T) {
	call := staking.Bond[balance.U64]{Amount: 0x0102}

	encoded, err := staking.EncodeCall[balance.U64, *balance.U64](call)
	require.Nil(t, err, "encode")
	assert.Equal(t, []byte{0, 2, 1, 0, 0, 0, 0, 0, 0}, encoded, "encoded")

	decoded, err := staking.DecodeCall[balance.U64, *balance.U64](encoded)
	require.Nil(t, err, "decode")
	assert.Equal(t, call, decoded, "decoded")

	_, err = staking.DecodeCall[balance.U64, *balance.U64]([]byte{1, 2, 1, 0, 0, 0, 0, 0, 0})
	assert.Equal(t, fault.ErrInvalidCallIndex, err, "bad index")

	_, err = staking.DecodeCall[balance.U64, *balance.U64](append(encoded, 0))
	assert.Equal(t, fault.ErrTrailingBytes, err, "trailing bytes")
}

func TestBondWithLedger(t *testing.T) {
	ledger, err := currency.New[balance.U64, *balance.U64](storage.NewMemory(), currency.Config[balance.U64]{
		ModuleID:       currencyID,
		Minter:         minter,
		MinimumBalance: 5,
	}, logger.New("currency"))
	require.Nil(t, err, "currency.New")

	m, err := staking.New[balance.U64](staking.Config[balance.U64]{
		ModuleID: stakingID,
		Currency: ledger,
	}, logger.New("staking"))
	require.Nil(t, err, "staking.New")

	err = m.Bond(sender, 1)
	assert.True(t, dispatch.Is(err, currencyID, dispatch.DoesNotExist), "bond without account")

	// same error as a transfer from the missing account
	transferErr := ledger.Transfer(sender, minter, 1)
	assert.Equal(t, transferErr, err, "bond and transfer disagree")

	require.Nil(t, ledger.Mint(minter, sender, 50), "mint")
	require.Nil(t, m.Bond(sender, 50), "bond all")

	free, _ := ledger.FreeBalance(sender)
	reserved, _ := ledger.ReservedBalance(sender)
	assert.Equal(t, balance.U64(0), free, "wrong free")
	assert.Equal(t, balance.U64(50), reserved, "wrong reserved")

	err = m.Bond(sender, 1)
	assert.True(t, dispatch.Is(err, currencyID, dispatch.InsufficientFunds), "bond from empty free")
}
