package models

// Election status values
type ElectionStatus string

const (
	ElectionActive ElectionStatus = "Active"
	ElectionDraft  ElectionStatus = "Draft"
	ElectionEnded  ElectionStatus = "Ended"
)

func (s ElectionStatus) Valid() bool {
	switch s {
	case ElectionActive, ElectionDraft, ElectionEnded:
		return true
	}
	return false
}

// Candidate status values
type CandidateStatus string

const (
	CandidateValid   CandidateStatus = "Valid"
	CandidateInvalid CandidateStatus = "Invalid"
)

func (s CandidateStatus) Valid() bool {
	return s == CandidateValid || s == CandidateInvalid
}

// Toggled returns the opposite candidate status
func (s CandidateStatus) Toggled() CandidateStatus {
	if s == CandidateValid {
		return CandidateInvalid
	}
	return CandidateValid
}

// DefaultCandidateImage is used when a candidate is saved without a picture
const DefaultCandidateImage = "/images/candidate-placeholder.png"

// DateLayout is the calendar date format used for election dates
const DateLayout = "2006-01-02"

// Domain types

type Election struct {
	ID         int            `json:"id"          yaml:"id"`
	Name       string         `json:"name"        yaml:"name"`
	Status     ElectionStatus `json:"status"      yaml:"status"`
	StartDate  string         `json:"start_date"  yaml:"start_date"`
	EndDate    string         `json:"end_date"    yaml:"end_date"`
	TotalVotes int            `json:"total_votes" yaml:"total_votes"`
}

type Candidate struct {
	ID     int             `json:"id"     yaml:"id"`
	Name   string          `json:"name"   yaml:"name"`
	Party  string          `json:"party"  yaml:"party"`
	Image  string          `json:"image"  yaml:"image"`
	Status CandidateStatus `json:"status" yaml:"status"`
}

// Forms (also used as request bodies)

type ElectionForm struct {
	Name      string         `json:"name"`
	Status    ElectionStatus `json:"status"`
	StartDate string         `json:"start_date"`
	EndDate   string         `json:"end_date"`
}

type CandidateForm struct {
	Name   string          `json:"name"`
	Party  string          `json:"party"`
	Image  string          `json:"image"`
	Status CandidateStatus `json:"status"`
}

// Request types

type SetElectionStatusRequest struct {
	Status ElectionStatus `json:"status"`
}

type OpenModalRequest struct {
	Kind        string `json:"kind"`
	CandidateID int    `json:"candidate_id,omitempty"`
}

type AccountsChangedRequest struct {
	Accounts []string `json:"accounts"`
}

type ChainChangedRequest struct {
	ChainID string `json:"chain_id"`
}

type GoogleSignInRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Image         string `json:"image"`
	WalletAddress string `json:"wallet_address"`
}

// Response types

type SaveCandidateResponse struct {
	Candidate Candidate `json:"candidate"`
	Created   bool      `json:"created"`
}

// Error responses

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ValidationErrorResponse struct {
	Error   string       `json:"error"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields"`
}
