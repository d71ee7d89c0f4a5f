/*
Copyright 2026 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package version reports the build information stamped into the vmss-inventory binary.
package version

import (
	"fmt"
	"runtime"
)

// Set through -ldflags "-X sigs.k8s.io/azure-vmss-inventory/version.gitVersion=...".
var (
	gitVersion   string
	gitCommit    string
	gitTreeState string
	buildDate    string
)

// Info describes the running build.
type Info struct {
	GitVersion   string `json:"gitVersion,omitempty"`
	GitCommit    string `json:"gitCommit,omitempty"`
	GitTreeState string `json:"gitTreeState,omitempty"`
	BuildDate    string `json:"buildDate,omitempty"`
	GoVersion    string `json:"goVersion,omitempty"`
	Platform     string `json:"platform,omitempty"`
}

// Get returns the build information of the running binary.
func Get() Info {
	return Info{
		GitVersion:   gitVersion,
		GitCommit:    gitCommit,
		GitTreeState: gitTreeState,
		BuildDate:    buildDate,
		GoVersion:    runtime.Version(),
		Platform:     fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String returns the git version, or "dev" for unstamped builds.
func (info Info) String() string {
	if info.GitVersion == "" {
		return "dev"
	}
	return info.GitVersion
}

// Long returns the version followed by commit and platform details, as printed by --version.
func (info Info) Long() string {
	s := info.String()
	if info.GitCommit != "" {
		s = fmt.Sprintf("%s (%s", s, info.GitCommit)
		if info.GitTreeState == "dirty" {
			s += "-dirty"
		}
		s += ")"
	}
	return fmt.Sprintf("%s %s %s", s, info.GoVersion, info.Platform)
}
