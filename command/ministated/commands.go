// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/minichain/account"
	"github.com/bitmark-inc/minichain/balance"
	"github.com/bitmark-inc/minichain/fault"
	"github.com/bitmark-inc/minichain/runtime"
	"github.com/bitmark-inc/minichain/storage"
)

// setup command handler
//
// commands that need neither the configuration nor the database
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "version", "v":
		fmt.Printf("%s\n", version)

	case "encode", "e":
		call, err := parseCall(arguments)
		if nil != err {
			exitwithstatus.Message("encode: error: %s", err)
		}
		data, err := runtime.EncodeCall(call)
		if nil != err {
			exitwithstatus.Message("encode: error: %s", err)
		}
		fmt.Printf("%x\n", data)

	case "config-test", "cfg":
		return false

	case "mint", "transfer", "transfer-all", "bond", "submit":
		return false

	case "balance", "issuance", "accounts", "audit", "dump":
		return false

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--version] --config-file=FILE [command|help] arguments...\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                         (h)    - display this message\n\n")
		fmt.Printf("  version                      (v)    - display version string\n\n")
		fmt.Printf("  encode CALL ARGS...          (e)    - print the hex encoding of a call:\n")
		fmt.Printf("                                        mint DEST AMOUNT | transfer DEST AMOUNT\n")
		fmt.Printf("                                        transfer-all DEST | bond AMOUNT\n")
		fmt.Printf("\n")
		fmt.Printf("  config-test                  (cfg)  - just check the configuration file\n")
		fmt.Printf("\n")
		fmt.Printf("  mint SENDER DEST AMOUNT             - create new funds, sender must be the minter\n")
		fmt.Printf("  transfer SENDER DEST AMOUNT         - move free funds\n")
		fmt.Printf("  transfer-all SENDER DEST            - move all free funds\n")
		fmt.Printf("  bond SENDER AMOUNT                  - reserve free funds for staking\n")
		fmt.Printf("  submit SENDER HEX                   - apply an encoded call\n")
		fmt.Printf("\n")
		fmt.Printf("  balance ACCOUNT                     - show the free and reserved balance\n")
		fmt.Printf("  issuance                            - show the total issuance\n")
		fmt.Printf("  accounts                            - list all accounts\n")
		fmt.Printf("  audit                               - check the ledger invariants\n")
		fmt.Printf("  dump                                - list all raw keys and values\n")
		fmt.Printf("\n")

		if "help" != command && "h" != command && "?" != command {
			exitwithstatus.Exit(1)
		}
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	switch arguments[0] {
	case "config-test", "cfg":
		printJSON("", options)

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// commands that only read the database
func isReadOnlyCommand(command string) bool {
	switch command {
	case "balance", "issuance", "accounts", "audit", "dump":
		return true
	default:
		return false
	}
}

// data command handler
// the database is open and the runtime is ready
func processDataCommand(log *logger.L, r *runtime.Runtime, store storage.Store, arguments []string) error {

	command := arguments[0]
	arguments = arguments[1:]

	switch command {
	case "mint", "transfer", "transfer-all", "bond":
		if len(arguments) < 1 {
			return fault.ErrMissingParameters
		}
		sender, err := account.Parse(arguments[0])
		if nil != err {
			return err
		}
		call, err := parseCall(append([]string{command}, arguments[1:]...))
		if nil != err {
			return err
		}
		log.Infof("%s: sender: %s  call: %+v", command, sender, call)
		return r.Dispatch(sender, call)

	case "submit":
		if 2 != len(arguments) {
			return fault.ErrMissingParameters
		}
		sender, err := account.Parse(arguments[0])
		if nil != err {
			return err
		}
		data, err := hex.DecodeString(arguments[1])
		if nil != err {
			return err
		}
		log.Infof("submit: sender: %s  call: %x", sender, data)
		return r.DispatchEncoded(sender, data)

	case "balance":
		if 1 != len(arguments) {
			return fault.ErrMissingParameters
		}
		acct, err := account.Parse(arguments[0])
		if nil != err {
			return err
		}
		ab, found := r.Account(acct)
		if !found {
			return fault.ErrInvalidAccount
		}
		printJSON("", accountItem{Account: acct, Free: ab.Free, Reserved: ab.Reserved})

	case "issuance":
		printJSON("", struct {
			TotalIssuance runtime.Balance `json:"total_issuance"`
		}{
			TotalIssuance: r.TotalIssuance(),
		})

	case "accounts":
		items := []accountItem{}
		err := r.Accounts(func(acct account.ID, ab runtime.AccountBalance) error {
			items = append(items, accountItem{Account: acct, Free: ab.Free, Reserved: ab.Reserved})
			return nil
		})
		if nil != err {
			return err
		}
		printJSON("", items)

	case "audit":
		if err := r.Audit(); nil != err {
			return err
		}
		fmt.Printf("ok\n")

	case "dump":
		return store.Map([]byte{}, func(key []byte, value []byte) error {
			fmt.Printf("%x: %x\n", key, value)
			return nil
		})

	default:
		return fault.ErrUnknownCommand
	}

	return nil
}

type accountItem struct {
	Account  account.ID      `json:"account"`
	Free     runtime.Balance `json:"free"`
	Reserved runtime.Balance `json:"reserved"`
}

// convert command words to a call
//
// words: the call name followed by its arguments, without the sender
func parseCall(words []string) (runtime.Call, error) {
	if 0 == len(words) {
		return nil, fault.ErrMissingParameters
	}

	name := words[0]
	words = words[1:]

	switch name {
	case "mint", "transfer":
		if 2 != len(words) {
			return nil, fault.ErrMissingParameters
		}
		dest, err := account.Parse(words[0])
		if nil != err {
			return nil, err
		}
		amount, err := balance.ParseU64(words[1])
		if nil != err {
			return nil, err
		}
		if "mint" == name {
			return runtime.CurrencyCall{Call: runtime.Mint{Dest: dest, Amount: amount}}, nil
		}
		return runtime.CurrencyCall{Call: runtime.Transfer{Dest: dest, Amount: amount}}, nil

	case "transfer-all":
		if 1 != len(words) {
			return nil, fault.ErrMissingParameters
		}
		dest, err := account.Parse(words[0])
		if nil != err {
			return nil, err
		}
		return runtime.CurrencyCall{Call: runtime.TransferAll{Dest: dest}}, nil

	case "bond":
		if 1 != len(words) {
			return nil, fault.ErrMissingParameters
		}
		amount, err := balance.ParseU64(words[0])
		if nil != err {
			return nil, err
		}
		return runtime.StakingCall{Call: runtime.Bond{Amount: amount}}, nil

	default:
		return nil, fault.ErrUnknownCall
	}
}

func printJSON(title string, message interface{}) {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		exitwithstatus.Message("error: JSON marshal error: %s", err)
	}

	if "" == title {
		fmt.Fprintf(os.Stdout, "%s\n", b)
	} else {
		fmt.Fprintf(os.Stdout, "%s:\n%s\n", title, b)
	}
}
