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

package inventory

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"k8s.io/utils/ptr"

	"sigs.k8s.io/azure-vmss-inventory/internal/test/record"
)

func TestMetricsObserveInventory(t *testing.T) {
	g := NewWithT(t)
	log, _ := record.NewLogger()
	inv := Assemble(log, []string{"vm-0", "vm-1", "vm-2"}, ips(ptr.To("10.0.0.4"), nil, ptr.To("10.0.0.6")), defaultVars)

	m := NewMetrics()
	m.ObserveInventory(inv)
	g.Expect(testutil.ToFloat64(m.hosts)).To(Equal(2.0))
	g.Expect(testutil.ToFloat64(m.skipped)).To(Equal(1.0))
	g.Expect(testutil.ToFloat64(m.lastRun)).To(BeNumerically(">", 0))
}

func TestMetricsObserveInventoryDuplicateIP(t *testing.T) {
	g := NewWithT(t)
	log, _ := record.NewLogger()
	inv := Assemble(log, []string{"vm-0", "vm-1", "vm-2"}, ips(ptr.To("10.0.0.4"), ptr.To("10.0.0.4"), ptr.To("")), defaultVars)

	m := NewMetrics()
	m.ObserveInventory(inv)
	g.Expect(testutil.ToFloat64(m.hosts)).To(Equal(1.0))
	g.Expect(testutil.ToFloat64(m.skipped)).To(Equal(1.0))
}

func TestMetricsWriteToTextfile(t *testing.T) {
	g := NewWithT(t)
	m := NewMetrics()
	m.QueryFailed(QueryIPs)
	m.ObserveInventory(New(defaultVars))

	path := filepath.Join(t.TempDir(), "vmss_inventory.prom")
	g.Expect(m.WriteToTextfile(path)).To(Succeed())

	data, err := os.ReadFile(path)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(testutil.CollectAndCompare(m, strings.NewReader(`
# HELP vmss_inventory_query_failures Whether an Azure query failed during the last run.
# TYPE vmss_inventory_query_failures gauge
vmss_inventory_query_failures{query="instances"} 0
vmss_inventory_query_failures{query="ips"} 1
vmss_inventory_query_failures{query="secret"} 0
`), "vmss_inventory_query_failures")).To(Succeed())
	g.Expect(string(data)).To(ContainSubstring(`vmss_inventory_query_failures{query="ips"} 1`))
	g.Expect(string(data)).To(ContainSubstring("vmss_inventory_hosts 0"))
}

func TestNilMetrics(t *testing.T) {
	g := NewWithT(t)
	var m *Metrics
	m.QueryFailed(QuerySecret)
	m.ObserveInventory(New(defaultVars))
	g.Expect(m.WriteToTextfile(filepath.Join(t.TempDir(), "unused.prom"))).To(Succeed())
}
