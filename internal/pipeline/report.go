// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 LINE Bot SDK Rust Authors

package pipeline

import (
	"github.com/goccy/go-json"
)

// JSON returns the summary as indented JSON.
func (s *Summary) JSON() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// reportEntry is the machine-readable form of one Result.
type reportEntry struct {
	Summary *Summary `json:"summary,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// ReportJSON returns all results as an indented JSON array, with failed
// documents reported by their error string.
func ReportJSON(results []Result) ([]byte, error) {
	entries := make([]reportEntry, len(results))
	for i, r := range results {
		entries[i].Summary = r.Summary
		if r.Err != nil {
			entries[i].Error = r.Err.Error()
		}
	}
	return json.MarshalIndent(entries, "", "  ")
}
