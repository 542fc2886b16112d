// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package dispatch - the contract shared by every module that executes
// calls on behalf of a sender
//
// a module reports a rejected call with a ModuleError tagged with its
// own identifier; anything else that goes wrong (unknown call,
// malformed input, store failure) is reported as Other
package dispatch
