// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// AppBuildInfo carries build-time metadata injected by linker flags.
// The server exposes it on the version endpoint and the client shows it
// in the TUI footer.
type AppBuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// NewAppBuildInfo replaces empty values with "N/A".
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		Version: orNA(version),
		Date:    orNA(date),
		Commit:  orNA(commit),
	}
}

// String renders a single-line summary, e.g. "v1.2.0 (abc123, 2026-01-01)".
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("%s (%s, %s)", a.Version, a.Commit, a.Date)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
