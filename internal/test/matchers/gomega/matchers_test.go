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

package gomega

import (
	"errors"
	"testing"

	"github.com/onsi/gomega"

	"sigs.k8s.io/azure-vmss-inventory/internal/test/record"
)

func TestLogContains(t *testing.T) {
	log, rec := record.NewLogger()
	log.WithValues("scaleSet", "vmss-1").V(2).Info("Host 10.0.0.4 added as master", "node", "vm-0")
	entry := rec.Entries()[0]

	cases := []struct {
		Name        string
		Matcher     LogMatcher
		ShouldMatch bool
	}{
		{
			Name:        "MatchesCompletely",
			Matcher:     LogContains("scaleSet", "vmss-1", "node", "vm-0").WithLevel(2).WithLogFunc("Info"),
			ShouldMatch: true,
		},
		{
			Name:        "MatchesWithoutSpecifyingLevel",
			Matcher:     LogContains("node", "vm-0").WithLogFunc("Info"),
			ShouldMatch: true,
		},
		{
			Name:        "MatchesMessage",
			Matcher:     LogMessage("Host 10.0.0.4 added as master"),
			ShouldMatch: true,
		},
		{
			Name:        "WrongLevel",
			Matcher:     LogContains("node", "vm-0").WithLevel(0),
			ShouldMatch: false,
		},
		{
			Name:        "WrongLogFunc",
			Matcher:     LogContains("node", "vm-0").WithLogFunc("Error"),
			ShouldMatch: false,
		},
		{
			Name:        "MissingValue",
			Matcher:     LogContains("node", "vm-1"),
			ShouldMatch: false,
		},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			success, err := c.Matcher.Match(entry)
			g.Expect(err).NotTo(gomega.HaveOccurred())
			g.Expect(success).To(gomega.Equal(c.ShouldMatch))
		})
	}
}

func TestLogContainsEntries(t *testing.T) {
	g := gomega.NewWithT(t)
	log, rec := record.NewLogger()
	log.Info("Mismatch between number of instances and IPs.", "instances", 3, "ips", 2)
	log.WithName("inventory").Error(errors.New("exit status 1"), "Error fetching VMSS IPs")

	g.Expect(rec.Entries()).To(gomega.ContainElements(
		LogMessage("Mismatch between number of instances and IPs.").WithLogFunc("Info"),
		LogMessage("Error fetching VMSS IPs").WithLogFunc("Error"),
	))
	g.Expect(rec.Entries()[1].Prefix).To(gomega.Equal("inventory"))
	g.Expect(rec.Messages()).To(gomega.Equal([]string{
		"Mismatch between number of instances and IPs.",
		"Error fetching VMSS IPs",
	}))
}

func TestDiffEq(t *testing.T) {
	g := gomega.NewWithT(t)
	g.Expect(map[string]bool{"is_master": true}).To(DiffEq(map[string]bool{"is_master": true}))
	g.Expect(map[string]bool{"is_master": true}).NotTo(DiffEq(map[string]bool{"is_master": false}))
}
