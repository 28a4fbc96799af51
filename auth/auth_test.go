// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"testing"
)

func TestValidateAdminKey(t *testing.T) {
	tests := []struct {
		name      string
		presented string
		expected  string
		wantErr   bool
	}{
		{"matching key", "s3cret", "s3cret", false},
		{"wrong key", "guess", "s3cret", true},
		{"missing key", "", "s3cret", true},
		{"prefix of key", "s3c", "s3cret", true},
		{"no key configured", "", "", false},
		{"no key configured ignores header", "anything", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAdminKey(tt.presented, tt.expected)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAdminKey() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidAdminKey) {
				t.Errorf("expected ErrInvalidAdminKey, got %v", err)
			}
		})
	}
}

func TestSetAuthAndLogout(t *testing.T) {
	id := SetAuth(MethodMetaMask, "0xabc", nil)
	if !id.Authenticated() {
		t.Fatal("expected authenticated identity")
	}
	if id.WalletAddress != "0xabc" || id.GoogleUser != nil {
		t.Errorf("unexpected identity: %+v", id)
	}

	id = Logout()
	if id.Authenticated() {
		t.Error("expected logout to clear the identity")
	}
	if id.WalletAddress != "" {
		t.Errorf("expected empty wallet address, got %q", id.WalletAddress)
	}
}

func TestGoogleSignIn(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"valid profile", "voter@example.com", false},
		{"missing email", "  ", true},
		{"malformed email", "not-an-email", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := GoogleSignIn(" Ada ", tt.email, "/ada.png", "0xfeed")
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidProfile) {
					t.Errorf("expected ErrInvalidProfile, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("GoogleSignIn() error = %v", err)
			}
			if id.Method != MethodGoogle {
				t.Errorf("expected method google, got %q", id.Method)
			}
			if id.GoogleUser == nil || id.GoogleUser.Name != "Ada" {
				t.Errorf("unexpected google user: %+v", id.GoogleUser)
			}
			if id.WalletAddress != "0xfeed" {
				t.Errorf("expected wallet address 0xfeed, got %q", id.WalletAddress)
			}
		})
	}
}

func TestDestination(t *testing.T) {
	tests := []struct {
		role    Role
		want    string
		wantErr bool
	}{
		{RoleAdmin, "/admin", false},
		{RoleVoter, "/dashboard", false},
		{"auditor", "", true},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			got, err := Destination(tt.role)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Destination() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Destination() = %q, want %q", got, tt.want)
			}
		})
	}
}
