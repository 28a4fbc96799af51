// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/ballot-admin/cliparse"
	"github.com/danielhkuo/ballot-admin/db"
	"github.com/danielhkuo/ballot-admin/metrics"
	"github.com/danielhkuo/ballot-admin/models"
	"github.com/danielhkuo/ballot-admin/seed"
	"github.com/danielhkuo/ballot-admin/session"
	"github.com/danielhkuo/ballot-admin/store"
	"github.com/danielhkuo/ballot-admin/wallet"
)

// TestAdminKey is the admin key used by GetTestConfig
const TestAdminKey = "test-admin-key"

// SetupTestDB creates a fresh sqlite database with the full schema.
// It is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3318,
		DatabaseType:  db.TypeSQLite,
		AdminKey:      TestAdminKey,
		WalletChainID: wallet.SepoliaChainID,
		SessionTTL:    cliparse.DefaultSessionTTL,
	}
}

// AdminHeaders carries the test admin key
func AdminHeaders() map[string]string {
	return map[string]string{"X-Admin-Key": TestAdminKey}
}

// Env is a wired set of services backed by a throwaway database
type Env struct {
	DB         *sql.DB
	Repo       *db.Repository
	Elections  *store.ElectionStore
	Candidates *store.CandidateStore
	Sessions   *session.Registry
	Connector  *wallet.Connector
	Metrics    *metrics.Recorder
}

// NewEnv builds services seeded with the default demo records. provider may
// be nil, which behaves like a browser without a wallet.
func NewEnv(t *testing.T, provider wallet.Provider) *Env {
	t.Helper()

	data, err := seed.Default()
	if err != nil {
		t.Fatalf("Failed to load seed data: %v", err)
	}

	conn := SetupTestDB(t)
	repo := db.NewRepository(conn, db.TypeSQLite)
	ctx := context.Background()
	if err := repo.SaveElections(ctx, data.Elections); err != nil {
		t.Fatalf("Failed to seed elections: %v", err)
	}
	if err := repo.SaveCandidates(ctx, data.Candidates); err != nil {
		t.Fatalf("Failed to seed candidates: %v", err)
	}

	return &Env{
		DB:         conn,
		Repo:       repo,
		Elections:  store.NewElectionStore(data.Elections, repo),
		Candidates: store.NewCandidateStore(data.Candidates, repo),
		Sessions:   session.NewRegistry(),
		Connector:  wallet.NewConnector(provider, wallet.SepoliaChainID),
		Metrics:    metrics.New(),
	}
}

// ValidElectionForm returns a form that passes validation
func ValidElectionForm(name string) models.ElectionForm {
	return models.ElectionForm{
		Name:      name,
		Status:    models.ElectionActive,
		StartDate: "2025-03-01",
		EndDate:   "2025-03-02",
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
