// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package validation checks election and candidate forms.
package validation

import (
	"strings"
	"time"

	"github.com/danielhkuo/ballot-admin/models"
)

// Error codes
const (
	CodeNameRequired     = "name_required"
	CodeDateRequired     = "date_required"
	CodeDateInvalid      = "date_invalid"
	CodeDateOrderInvalid = "date_order_invalid"
	CodeStatusInvalid    = "status_invalid"
)

// Form fields that errors attach to
const (
	FieldName   = "name"
	FieldDate   = "date"
	FieldStatus = "status"
)

// Result holds every problem found in a form
type Result struct {
	Errors []models.FieldError `json:"errors"`
}

// Valid reports whether the form had no errors
func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

// Has reports whether the result contains the given code
func (r Result) Has(code string) bool {
	for _, e := range r.Errors {
		if e.Code == code {
			return true
		}
	}
	return false
}

// Codes lists error codes in the order they were found
func (r Result) Codes() []string {
	codes := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		codes = append(codes, e.Code)
	}
	return codes
}

func (r *Result) add(field, code, message string) {
	r.Errors = append(r.Errors, models.FieldError{Field: field, Code: code, Message: message})
}

// ValidateElection checks an election form.
// An empty status is accepted; stores default it to Active.
func ValidateElection(form models.ElectionForm) Result {
	var res Result

	if strings.TrimSpace(form.Name) == "" {
		res.add(FieldName, CodeNameRequired, "Election name is required.")
	}

	if form.Status != "" && !form.Status.Valid() {
		res.add(FieldStatus, CodeStatusInvalid, "Status must be one of Active, Draft, Ended.")
	}

	start := strings.TrimSpace(form.StartDate)
	end := strings.TrimSpace(form.EndDate)
	if start == "" || end == "" {
		res.add(FieldDate, CodeDateRequired, "Start and end dates are required.")
		return res
	}

	startDate, errStart := time.Parse(models.DateLayout, start)
	endDate, errEnd := time.Parse(models.DateLayout, end)
	if errStart != nil || errEnd != nil {
		res.add(FieldDate, CodeDateInvalid, "Dates must use the YYYY-MM-DD format.")
		return res
	}

	if startDate.After(endDate) {
		res.add(FieldDate, CodeDateOrderInvalid, "Start date must be before or equal to the end date.")
	}

	return res
}

// ValidateCandidate checks a candidate form. Party and image are unconstrained.
func ValidateCandidate(form models.CandidateForm) Result {
	var res Result

	if strings.TrimSpace(form.Name) == "" {
		res.add(FieldName, CodeNameRequired, "Candidate name is required.")
	}
	if form.Status != "" && !form.Status.Valid() {
		res.add(FieldStatus, CodeStatusInvalid, "Status must be Valid or Invalid.")
	}

	return res
}
