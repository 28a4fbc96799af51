// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the admin records, forms, and request/response types.

# Domain Types

  - Election: id, name, status, start_date, end_date, total_votes
  - Candidate: id, name, party, image, status

# Forms

Forms double as JSON request bodies for create and save operations:

  - ElectionForm: name, status, start_date, end_date
  - CandidateForm: name, party, image, status

# Request Types

  - SetElectionStatusRequest: status
  - OpenModalRequest: kind, candidate_id
  - AccountsChangedRequest: accounts
  - ChainChangedRequest: chain_id
  - GoogleSignInRequest: name, email, image, wallet_address

# Error Types

  - ErrorResponse: error, message
  - ValidationErrorResponse: error, message, fields
  - FieldError: field, code, message

# Constants

Election status values:

	ElectionActive = "Active"
	ElectionDraft  = "Draft"
	ElectionEnded  = "Ended"

Candidate status values:

	CandidateValid   = "Valid"
	CandidateInvalid = "Invalid"

Election dates use DateLayout ("2006-01-02").
*/
package models
