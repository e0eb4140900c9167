// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// BuildValueUnknown is reported for build fields the linker left empty.
const BuildValueUnknown = "N/A"

// AppBuildInfo identifies a planner binary. Fields are set with -ldflags -X.
type AppBuildInfo struct {
	Version string
	Date    string
	Commit  string
}

func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{Version: version, Date: date, Commit: commit}
}

// Resolved returns a copy where every empty field reads BuildValueUnknown.
func (b AppBuildInfo) Resolved() AppBuildInfo {
	return AppBuildInfo{
		Version: orUnknown(b.Version),
		Date:    orUnknown(b.Date),
		Commit:  orUnknown(b.Commit),
	}
}

func orUnknown(v string) string {
	if v == "" {
		return BuildValueUnknown
	}
	return v
}
