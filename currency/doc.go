// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package currency - the ledger module
//
// keeps a free and reserved balance for every account and the total
// issuance of the currency; every existing account must have a free
// balance that is either zero or at least the configured minimum
//
// storage layout:
//
//   key                          value
//   ---------------------------  -----------------------------
//   TotalIssuance                balance
//   BalancesMap_ ++ account(LE)  free balance ++ reserved balance
//
// the module is generic over the balance type; the runtime binds a
// concrete one
package currency
