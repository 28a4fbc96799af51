// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"fmt"
	"net/mail"
	"strings"
)

var (
	ErrInvalidAdminKey  = errors.New("invalid admin key")
	ErrInvalidProfile   = errors.New("invalid google profile")
	ErrUnknownRole      = errors.New("unknown role")
	ErrNotAuthenticated = errors.New("not authenticated")
)

// ValidateAdminKey compares a presented admin key against the configured one
// in constant time. Both are hashed first so their lengths don't leak.
func ValidateAdminKey(presented, expected string) error {
	if expected == "" {
		return nil
	}
	p := sha256.Sum256([]byte(presented))
	e := sha256.Sum256([]byte(expected))
	if !hmac.Equal(p[:], e[:]) {
		return ErrInvalidAdminKey
	}
	return nil
}

// Method is how a user signed in
type Method string

const (
	MethodNone     Method = ""
	MethodMetaMask Method = "metamask"
	MethodGoogle   Method = "google"
)

type GoogleUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Image string `json:"image"`
}

// Identity is who is using a session
type Identity struct {
	Method        Method      `json:"method"`
	WalletAddress string      `json:"wallet_address,omitempty"`
	GoogleUser    *GoogleUser `json:"google_user,omitempty"`
}

func (id Identity) Authenticated() bool { return id.Method != MethodNone }

// SetAuth replaces the identity. googleUser may be nil.
func SetAuth(method Method, walletAddress string, googleUser *GoogleUser) Identity {
	return Identity{Method: method, WalletAddress: walletAddress, GoogleUser: googleUser}
}

// Logout clears the identity
func Logout() Identity { return Identity{} }

// GoogleSignIn builds an identity from a profile returned by the Google
// sign-in collaborator. The profile itself is trusted as given.
func GoogleSignIn(name, email, image, walletAddress string) (Identity, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return Identity{}, fmt.Errorf("%w: email is required", ErrInvalidProfile)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}
	return SetAuth(MethodGoogle, strings.TrimSpace(walletAddress), &GoogleUser{
		Name:  strings.TrimSpace(name),
		Email: email,
		Image: strings.TrimSpace(image),
	}), nil
}

// Role picks where a user lands after signing in
type Role string

const (
	RoleAdmin Role = "admin"
	RoleVoter Role = "voter"
)

// Destination maps a role to its view path
func Destination(role Role) (string, error) {
	switch role {
	case RoleAdmin:
		return "/admin", nil
	case RoleVoter:
		return "/dashboard", nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRole, role)
}
