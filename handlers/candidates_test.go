// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/danielhkuo/ballot-admin/models"
	"github.com/danielhkuo/ballot-admin/testutil"
)

func TestCreateCandidate(t *testing.T) {
	tests := []struct {
		name            string
		form            models.CandidateForm
		expectedStatus  int
		expectedImage   string
		candidateStatus models.CandidateStatus
	}{
		{
			name:            "defaults applied",
			form:            models.CandidateForm{Name: "  Meera Nair ", Party: " Green Front "},
			expectedStatus:  http.StatusCreated,
			expectedImage:   models.DefaultCandidateImage,
			candidateStatus: models.CandidateValid,
		},
		{
			name:            "explicit image and status",
			form:            models.CandidateForm{Name: "Meera Nair", Image: "/m.png", Status: models.CandidateInvalid},
			expectedStatus:  http.StatusCreated,
			expectedImage:   "/m.png",
			candidateStatus: models.CandidateInvalid,
		},
		{
			name:           "blank name",
			form:           models.CandidateForm{Name: " ", Party: "Green Front"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown status",
			form:           models.CandidateForm{Name: "Meera Nair", Status: "Pending"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := testutil.NewEnv(t, nil)
			handler := NewCandidateHandler(env.Candidates, env.Metrics)

			w := httptest.NewRecorder()
			handler.Create(w, testutil.MakeRequest("POST", "/candidates", tt.form, nil))

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedStatus != http.StatusCreated {
				if env.Candidates.Len() != 4 {
					t.Errorf("Expected collection unchanged, got %d", env.Candidates.Len())
				}
				return
			}

			var resp models.SaveCandidateResponse
			testutil.AssertJSON(t, w, &resp)
			if !resp.Created {
				t.Error("Expected created=true")
			}
			c := resp.Candidate
			if c.ID != 5 {
				t.Errorf("Expected id 5, got %d", c.ID)
			}
			if c.Name != "Meera Nair" {
				t.Errorf("Expected trimmed name, got '%s'", c.Name)
			}
			if c.Image != tt.expectedImage {
				t.Errorf("Expected image %s, got %s", tt.expectedImage, c.Image)
			}
			if c.Status != tt.candidateStatus {
				t.Errorf("Expected status %s, got %s", tt.candidateStatus, c.Status)
			}
			if env.Candidates.List()[0].ID != 5 {
				t.Error("Expected new candidate at the front")
			}
		})
	}
}

func TestUpdateCandidate(t *testing.T) {
	t.Run("present id keeps position", func(t *testing.T) {
		env := testutil.NewEnv(t, nil)
		handler := NewCandidateHandler(env.Candidates, env.Metrics)

		req := testutil.MakeRequest("PUT", "/candidates/2", models.CandidateForm{Name: "Vivek K.", Party: "Progress Alliance"}, nil)
		req.SetPathValue("id", "2")
		w := httptest.NewRecorder()

		handler.Update(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.SaveCandidateResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.Created {
			t.Error("Expected created=false for an update")
		}
		if resp.Candidate.Image != "/images/candidates/vivek.png" {
			t.Errorf("Expected existing image kept, got %s", resp.Candidate.Image)
		}

		list := env.Candidates.List()
		if len(list) != 4 {
			t.Fatalf("Expected 4 candidates, got %d", len(list))
		}
		if list[1].ID != 2 || list[1].Name != "Vivek K." {
			t.Errorf("Expected candidate 2 updated in place, got %+v", list[1])
		}
	})

	t.Run("absent id is inserted", func(t *testing.T) {
		env := testutil.NewEnv(t, nil)
		handler := NewCandidateHandler(env.Candidates, env.Metrics)

		req := testutil.MakeRequest("PUT", "/candidates/77", models.CandidateForm{Name: "Late Entry"}, nil)
		req.SetPathValue("id", "77")
		w := httptest.NewRecorder()

		handler.Update(w, req)

		testutil.AssertStatus(t, w, http.StatusCreated)
		if got, err := env.Candidates.Get(77); err != nil || got.Name != "Late Entry" {
			t.Errorf("Expected candidate 77 inserted, got %+v (%v)", got, err)
		}
	})
}

func TestToggleCandidateStatus(t *testing.T) {
	env := testutil.NewEnv(t, nil)
	handler := NewCandidateHandler(env.Candidates, env.Metrics)

	toggle := func(id int) *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", "/candidates/"+strconv.Itoa(id)+"/toggle-status", nil)
		req.SetPathValue("id", strconv.Itoa(id))
		w := httptest.NewRecorder()
		handler.ToggleStatus(w, req)
		return w
	}

	w := toggle(3)
	testutil.AssertStatus(t, w, http.StatusOK)
	var c models.Candidate
	testutil.AssertJSON(t, w, &c)
	if c.Status != models.CandidateValid {
		t.Errorf("Expected Invalid → Valid, got %s", c.Status)
	}

	// Toggling twice restores the original
	testutil.AssertStatus(t, toggle(3), http.StatusOK)
	if got, _ := env.Candidates.Get(3); got.Status != models.CandidateInvalid {
		t.Errorf("Expected Invalid after two toggles, got %s", got.Status)
	}

	testutil.AssertStatus(t, toggle(50), http.StatusNotFound)
}

func TestGetCandidate(t *testing.T) {
	env := testutil.NewEnv(t, nil)
	handler := NewCandidateHandler(env.Candidates, env.Metrics)

	req := httptest.NewRequest("GET", "/candidates/1", nil)
	req.SetPathValue("id", "1")
	w := httptest.NewRecorder()

	handler.Get(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	var c models.Candidate
	testutil.AssertJSON(t, w, &c)
	if c.Name != "Priya Sharma" {
		t.Errorf("Expected Priya Sharma, got %s", c.Name)
	}

	w = httptest.NewRecorder()
	handler.List(w, httptest.NewRequest("GET", "/candidates", nil))
	var list []models.Candidate
	testutil.AssertJSON(t, w, &list)
	if len(list) != 4 {
		t.Errorf("Expected 4 candidates, got %d", len(list))
	}
}
