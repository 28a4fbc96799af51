// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: Snapshot database; empty keeps records in memory only
  - DatabaseType: sqlite (default) or postgres
  - AdminKey: Required X-Admin-Key value for admin mutations (optional)
  - SeedFile: YAML seed data (default: built-in demo records)
  - WalletRPCURL: Ethereum JSON-RPC endpoint used as the wallet provider
  - WalletChainID: Expected chain id (default: Sepolia, 0xaa36a7)
  - SessionTTL: Idle time before a session is swept (default: 30m)
  - Debug: Debug-level logging with source locations

# CLI Flags

	-p             Server port
	-d             Database URL
	-t             Database type
	-seed          Seed file
	-wallet-rpc    Wallet JSON-RPC endpoint
	-chain-id      Expected chain id
	-session-ttl   Session idle timeout
	-debug         Debug logging
	-admin-key     Admin key
	-env-file      Dotenv file (default: .env)

# Environment Variables

The dotenv file is loaded first (missing files are ignored, existing
variables are never overwritten). Flags then fall back to:

	PORT            → -p
	DATABASE_URL    → -d
	DATABASE_TYPE   → -t
	SEED_FILE       → -seed
	WALLET_RPC_URL  → -wallet-rpc
	WALLET_CHAIN_ID → -chain-id
	SESSION_TTL     → -session-ttl
	DEBUG           → -debug
	ADMIN_KEY       → -admin-key

CLI flags take precedence over environment variables.
*/
package cliparse
