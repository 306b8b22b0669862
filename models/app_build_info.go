// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

const notAvailable = "N/A"

// AppBuildInfo carries build-time metadata injected with -ldflags and shown
// on the client's version overlay.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo]. Empty values are reported as "N/A".
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orNotAvailable(buildVersion),
		buildDate:    orNotAvailable(buildDate),
		buildCommit:  orNotAvailable(buildCommit),
	}
}

func (a AppBuildInfo) BuildVersion() string { return orNotAvailable(a.buildVersion) }
func (a AppBuildInfo) BuildDate() string    { return orNotAvailable(a.buildDate) }
func (a AppBuildInfo) BuildCommit() string  { return orNotAvailable(a.buildCommit) }

// String renders the three values on separate lines.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s",
		a.BuildVersion(), a.BuildDate(), a.BuildCommit())
}

func orNotAvailable(v string) string {
	if v == "" {
		return notAvailable
	}
	return v
}
