// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package balance - numeric types usable as an account balance
//
// every arithmetic operation is checked, callers decide how to report
// an overflow or underflow
package balance
