// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package wallet

import (
	"context"
	"errors"
	"log/slog"
	"strings"
)

// SepoliaChainID is the expected network unless configured otherwise
const SepoliaChainID = "0xaa36a7"

var ErrNoProvider = errors.New("no wallet provider available")

// Provider is the injected wallet the connector talks to
type Provider interface {
	RequestAccounts(ctx context.Context) ([]string, error)
	Accounts(ctx context.Context) ([]string, error)
	ChainID(ctx context.Context) (string, error)
}

// StatusKind classifies the status banner
type StatusKind string

const (
	StatusSuccess StatusKind = "success"
	StatusWarning StatusKind = "warning"
	StatusError   StatusKind = "error"
)

type Status struct {
	Kind    StatusKind `json:"kind"`
	Message string     `json:"message"`
}

// Connection is what a client knows about its wallet
type Connection struct {
	Address string  `json:"address,omitempty"`
	ChainID string  `json:"chain_id,omitempty"`
	Status  *Status `json:"status,omitempty"`
}

// Connected reports whether an account is linked
func (c Connection) Connected() bool { return c.Address != "" }

// Connector turns provider outcomes into connection states.
// It keeps no state of its own.
type Connector struct {
	provider Provider
	chainID  string
}

// NewConnector creates a connector. A nil provider behaves like a browser
// without a wallet installed.
func NewConnector(provider Provider, expectedChainID string) *Connector {
	if expectedChainID == "" {
		expectedChainID = SepoliaChainID
	}
	return &Connector{provider: provider, chainID: normalizeChainID(expectedChainID)}
}

func (c *Connector) ExpectedChainID() string { return c.chainID }

// Ready returns ErrNoProvider when no wallet is installed
func (c *Connector) Ready() error {
	if c.provider == nil {
		return ErrNoProvider
	}
	return nil
}

// Connect requests accounts from the provider and checks the network
func (c *Connector) Connect(ctx context.Context, prev Connection) Connection {
	if err := c.Ready(); err != nil {
		slog.Warn("wallet connect failed", "error", err)
		return withStatus(prev, StatusError, "No wallet provider is available. Please install one to continue.")
	}

	accounts, err := c.provider.RequestAccounts(ctx)
	if err != nil || len(accounts) == 0 {
		slog.Warn("wallet connect failed", "error", err)
		return withStatus(prev, StatusError, "Wallet connection failed or was cancelled.")
	}

	next := prev
	next.Address = accounts[0]
	chainID, err := c.provider.ChainID(ctx)
	if err != nil {
		slog.Warn("wallet chain lookup failed", "error", err)
		return withStatus(next, StatusError, "Wallet connection failed or was cancelled.")
	}
	return c.onChain(next, chainID, "Wallet connected on "+c.networkName()+".")
}

// Check looks for an already authorised account without prompting
func (c *Connector) Check(ctx context.Context, prev Connection) Connection {
	if err := c.Ready(); err != nil {
		slog.Debug("wallet status check skipped", "error", err)
		return withStatus(prev, StatusError, "No wallet provider is available. Please install one to continue.")
	}

	accounts, err := c.provider.Accounts(ctx)
	if err != nil {
		slog.Warn("wallet status check failed", "error", err)
		return withStatus(prev, StatusError, "Unable to read wallet status.")
	}
	if len(accounts) == 0 {
		return prev
	}

	next := prev
	next.Address = accounts[0]
	chainID, err := c.provider.ChainID(ctx)
	if err != nil {
		return withStatus(next, StatusError, "Unable to read wallet status.")
	}
	return c.onChain(next, chainID, "Wallet connected on "+c.networkName()+".")
}

// AccountsChanged applies an account switch notification
func (c *Connector) AccountsChanged(prev Connection, accounts []string) Connection {
	next := prev
	if len(accounts) == 0 {
		next.Address = ""
		return withStatus(next, StatusWarning, "Wallet disconnected.")
	}
	next.Address = accounts[0]
	return withStatus(next, StatusSuccess, "Wallet connected.")
}

// ChainChanged applies a network switch notification
func (c *Connector) ChainChanged(prev Connection, chainID string) Connection {
	return c.onChain(prev, chainID, "Connected to "+c.networkName()+".")
}

func (c *Connector) onChain(prev Connection, chainID, okMessage string) Connection {
	next := prev
	next.ChainID = normalizeChainID(chainID)
	if next.ChainID != c.chainID {
		return withStatus(next, StatusWarning, "Wrong network. Please switch to "+c.networkName()+".")
	}
	return withStatus(next, StatusSuccess, okMessage)
}

func (c *Connector) networkName() string {
	if name, ok := networkNames[c.chainID]; ok {
		return name
	}
	return "chain " + c.chainID
}

var networkNames = map[string]string{
	"0x1":      "Ethereum Mainnet",
	"0xaa36a7": "Sepolia",
	"0x4268":   "Holesky",
}

func withStatus(c Connection, kind StatusKind, message string) Connection {
	c.Status = &Status{Kind: kind, Message: message}
	return c
}

func normalizeChainID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// ShortenAddress abbreviates an address for display, e.g. 0x1234...abcd
func ShortenAddress(address string) string {
	if len(address) <= 10 {
		return address
	}
	return address[:6] + "..." + address[len(address)-4:]
}
