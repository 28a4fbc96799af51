// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package seed loads the initial election and candidate lists from YAML.
package seed

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/ballot-admin/models"
	"github.com/danielhkuo/ballot-admin/validation"
)

//go:embed default.yaml
var defaultSeed []byte

var ErrInvalidSeed = errors.New("invalid seed data")

type Data struct {
	Elections  []models.Election  `yaml:"elections"`
	Candidates []models.Candidate `yaml:"candidates"`
}

// Default returns the built-in demo records
func Default() (Data, error) {
	return Parse(strings.NewReader(string(defaultSeed)))
}

// Load reads seed data from path, or the built-in data when path is empty
func Load(path string) (Data, error) {
	if path == "" {
		return Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return Data{}, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes and checks seed data. Unknown fields are rejected.
func Parse(r io.Reader) (Data, error) {
	var d Data
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil && !errors.Is(err, io.EOF) {
		return Data{}, fmt.Errorf("failed to decode seed data: %w", err)
	}
	if err := d.check(); err != nil {
		return Data{}, err
	}
	for i := range d.Candidates {
		d.Candidates[i].Image = strings.TrimSpace(d.Candidates[i].Image)
		if d.Candidates[i].Image == "" {
			d.Candidates[i].Image = models.DefaultCandidateImage
		}
	}
	return d, nil
}

func (d Data) check() error {
	seen := make(map[int]bool)
	for _, e := range d.Elections {
		if e.ID <= 0 || seen[e.ID] {
			return fmt.Errorf("%w: election id %d is not a unique positive integer", ErrInvalidSeed, e.ID)
		}
		seen[e.ID] = true
		res := validation.ValidateElection(models.ElectionForm{
			Name:      e.Name,
			Status:    e.Status,
			StartDate: e.StartDate,
			EndDate:   e.EndDate,
		})
		if !res.Valid() || e.Status == "" {
			return fmt.Errorf("%w: election %d: %s", ErrInvalidSeed, e.ID, strings.Join(res.Codes(), ", "))
		}
		if e.TotalVotes < 0 {
			return fmt.Errorf("%w: election %d has negative total_votes", ErrInvalidSeed, e.ID)
		}
	}

	clear(seen)
	for _, c := range d.Candidates {
		if c.ID <= 0 || seen[c.ID] {
			return fmt.Errorf("%w: candidate id %d is not a unique positive integer", ErrInvalidSeed, c.ID)
		}
		seen[c.ID] = true
		res := validation.ValidateCandidate(models.CandidateForm{Name: c.Name, Status: c.Status})
		if !res.Valid() || c.Status == "" {
			return fmt.Errorf("%w: candidate %d: %s", ErrInvalidSeed, c.ID, strings.Join(res.Codes(), ", "))
		}
	}
	return nil
}
