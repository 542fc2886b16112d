// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// ministated - apply ledger and staking calls to a local state database
//
// each invocation opens the database named in the configuration file,
// performs one command and closes it again:
//
//   ministated --config-file=ministated.conf mint 42 1 100
//   ministated --config-file=ministated.conf transfer 1 2 20
//   ministated --config-file=ministated.conf balance 2
//
// calls can also be prepared as hex with "encode" and later applied
// with "submit"
package main
