// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMutation(t *testing.T) {
	r := New()

	r.Mutation(Elections, "create", 4)
	r.Mutation(Elections, "create", 5)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.mutations.WithLabelValues(Elections, "create")))
	assert.Equal(t, 5.0, testutil.ToFloat64(r.records.WithLabelValues(Elections)))
}

func TestValidationFailure(t *testing.T) {
	r := New()

	r.ValidationFailure(Candidates, []string{"name_required"})
	r.ValidationFailure(Candidates, []string{"name_required", "status_invalid"})

	assert.Equal(t, 2.0, testutil.ToFloat64(r.validationFailures.WithLabelValues(Candidates, "name_required")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.validationFailures.WithLabelValues(Candidates, "status_invalid")))
}

func TestNilRecorder(t *testing.T) {
	var r *Recorder

	assert.NotPanics(t, func() {
		r.Mutation(Elections, "create", 1)
		r.Records(Elections, 1)
		r.ValidationFailure(Elections, []string{"x"})
		r.Sessions(3)
		r.WalletStatus("error")
	})

	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler(t *testing.T) {
	r := New()
	r.Sessions(2)
	r.WalletStatus("success")

	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.Contains(body, "ballot_admin_sessions 2"), body)
	assert.Contains(t, body, `ballot_admin_wallet_status_total{kind="success"} 1`)
}
