// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// AppBuildInfo is the build metadata injected into the binary with linker
// flags. Any of the values may be empty for local builds.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo] from the provided build metadata.
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: strings.TrimSpace(buildVersion),
		buildDate:    strings.TrimSpace(buildDate),
		buildCommit:  strings.TrimSpace(buildCommit),
	}
}

func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}

// Version is the one-line form used by the --version flag, e.g.
// "1.2.0 (commit abc123, built 2026-01-02)". Missing parts are left out.
func (a AppBuildInfo) Version() string {
	version := a.buildVersion
	if version == "" {
		version = "dev"
	}

	var details []string
	if a.buildCommit != "" {
		details = append(details, "commit "+a.buildCommit)
	}
	if a.buildDate != "" {
		details = append(details, "built "+a.buildDate)
	}
	if len(details) == 0 {
		return version
	}
	return version + " (" + strings.Join(details, ", ") + ")"
}
