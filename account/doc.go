// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - identity of a transaction sender or recipient
//
// an account is a plain number; equality is by value and the stored
// form is the 4 byte little endian encoding of that number
package account
