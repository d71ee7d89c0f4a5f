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
	"context"

	"github.com/pkg/errors"

	"sigs.k8s.io/azure-vmss-inventory/azure"
	"sigs.k8s.io/azure-vmss-inventory/util/tele"
)

// GeneratorScope defines the scope interface for a Generator.
type GeneratorScope interface {
	azure.ScaleSetDescriber
	azure.KeyVaultDescriber
	AnsibleUser() string
	KeyFilePath() string
	StrictSecret() bool
}

// Generator produces the inventory of one scale set.
type Generator struct {
	Scope   GeneratorScope
	Source  Source
	Metrics *Metrics
}

// Generate fetches the SSH private key, lists the scale set's instances and IPs
// and assembles the inventory.
//
// A failure to list instances or IPs is logged and the run proceeds as if the
// list were empty. A failure to fetch the key is logged and ignored unless the
// scope asks for strict secret handling. An empty secret always fails the run
// with ErrEmptySecret.
func (g *Generator) Generate(ctx context.Context) (*Inventory, error) {
	ctx, log, done := tele.StartSpanWithLogger(ctx, "inventory.Generator.Generate",
		tele.KVP("resourceGroup", g.Scope.ResourceGroup()),
		tele.KVP("scaleSet", g.Scope.ScaleSetName()),
	)
	defer done()

	if err := FetchSSHPrivateKey(ctx, g.Source, g.Scope, g.Scope.KeyFilePath()); err != nil {
		if errors.Is(err, ErrEmptySecret) {
			log.Error(err, "SSH private key not found in Key Vault.")
			g.Metrics.QueryFailed(QuerySecret)
			return nil, err
		}
		log.Error(err, "Error fetching SSH private key")
		g.Metrics.QueryFailed(QuerySecret)
		if g.Scope.StrictSecret() {
			return nil, errors.Wrap(err, "failed to fetch SSH private key")
		}
	}

	names, err := g.Source.ListInstances(ctx, g.Scope.ResourceGroup(), g.Scope.ScaleSetName())
	if err != nil {
		log.Error(err, "Error fetching VMSS instances")
		g.Metrics.QueryFailed(QueryInstances)
		names = []string{}
	}

	ips, err := g.Source.ListIPs(ctx, g.Scope.ResourceGroup(), g.Scope.ScaleSetName())
	if err != nil {
		log.Error(err, "Error fetching VMSS IPs")
		g.Metrics.QueryFailed(QueryIPs)
		ips = []*string{}
	}

	inv := Assemble(log, names, ips, GroupVars{
		AnsibleUser:              g.Scope.AnsibleUser(),
		AnsibleSSHPrivateKeyFile: g.Scope.KeyFilePath(),
	})
	g.Metrics.ObserveInventory(inv)
	return inv, nil
}
