// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/minichain/configuration"
	"github.com/bitmark-inc/minichain/fault"
)

type moduleType struct {
	ModuleID       string `gluamapper:"module_id"`
	Minter         uint32 `gluamapper:"minter"`
	MinimumBalance uint64 `gluamapper:"minimum_balance"`
}

type testConfiguration struct {
	Chain    string            `gluamapper:"chain"`
	Currency moduleType        `gluamapper:"currency"`
	Levels   map[string]string `gluamapper:"levels"`
}

const source = `
local M = {}
M.chain = "local"
M.currency = {
    module_id = "MOD_CURRENCY",
    minter = 42,
    minimum_balance = 5,
}
M.levels = {
    DEFAULT = "info",
    currency = "debug",
}
return M
`

func TestParseString(t *testing.T) {
	config := testConfiguration{}
	err := configuration.ParseConfigurationString(source, &config)
	require.Nil(t, err, "parse")

	assert.Equal(t, testConfiguration{
		Chain: "local",
		Currency: moduleType{
			ModuleID:       "MOD_CURRENCY",
			Minter:         42,
			MinimumBalance: 5,
		},
		Levels: map[string]string{
			"DEFAULT":  "info",
			"currency": "debug",
		},
	}, config, "wrong configuration")
}

func TestDefaultsAreKept(t *testing.T) {
	config := testConfiguration{
		Chain: "testing",
		Currency: moduleType{
			ModuleID: "MOD_CURRENCY",
		},
	}
	err := configuration.ParseConfigurationString(`return { currency = { minter = 7 } }`, &config)
	require.Nil(t, err, "parse")

	assert.Equal(t, "testing", config.Chain, "default chain replaced")
	assert.Equal(t, uint32(7), config.Currency.Minter, "minter")
}

func TestMustReturnTable(t *testing.T) {
	config := testConfiguration{}
	err := configuration.ParseConfigurationString(`return 3`, &config)
	assert.Equal(t, fault.ErrConfigurationNotTable, err, "non table accepted")

	err = configuration.ParseConfigurationString(`return {`, &config)
	assert.NotNil(t, err, "syntax error accepted")
}

func TestParseFileWithVariables(t *testing.T) {
	dir := t.TempDir()
	fileName := filepath.Join(dir, "test.conf")
	script := `
return {
    chain = chain_name,
    currency = { module_id = arg[0] },
}
`
	require.Nil(t, os.WriteFile(fileName, []byte(script), 0600), "write")

	config := testConfiguration{}
	err := configuration.ParseConfigurationFile(fileName, &config, map[string]string{"chain_name": "bitmark"})
	require.Nil(t, err, "parse")
	assert.Equal(t, "bitmark", config.Chain, "variable not visible")
	assert.Equal(t, fileName, config.Currency.ModuleID, "arg[0] not file name")
}
