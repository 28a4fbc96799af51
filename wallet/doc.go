// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package wallet talks to a browser-style Ethereum wallet.

A Provider answers eth_requestAccounts, eth_accounts and eth_chainId.
RPCProvider does this over JSON-RPC 2.0. The Connector turns each outcome
into a Connection with a success, warning or error banner; it keeps no state.
*/
package wallet
