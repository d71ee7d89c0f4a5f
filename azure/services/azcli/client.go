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

// Package azcli queries scale set instances, their private IPs and Key Vault
// secrets through the az command line tool.
package azcli

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"k8s.io/utils/ptr"

	"sigs.k8s.io/azure-vmss-inventory/util/tele"
)

const (
	instanceNamesQuery = "[].name"
	primaryIPsQuery    = "[].ipConfigurations[?primary].privateIPAddress"
	secretValueQuery   = "value"
)

// Client queries Azure through az.
type Client struct {
	Runner Runner
}

// New creates a new Client running az at path.
func New(path string) *Client {
	return &Client{Runner: NewRunner(path)}
}

// ListInstances returns the instance names of a scale set in the order az lists them.
func (c *Client) ListInstances(ctx context.Context, resourceGroup, vmssName string) ([]string, error) {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "azcli.Client.ListInstances",
		tele.KVP("resourceGroup", resourceGroup),
		tele.KVP("scaleSet", vmssName),
	)
	defer done()

	out, err := c.Runner.Run(ctx,
		"vmss", "list-instances",
		"--resource-group", resourceGroup,
		"--name", vmssName,
		"--query", instanceNamesQuery,
		"-o", "json",
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list instances of scale set %s", vmssName)
	}

	var names []string
	if err := json.Unmarshal(out, &names); err != nil {
		return nil, errors.Wrap(err, "failed to parse scale set instance names")
	}
	return names, nil
}

// ListIPs returns the primary private IPs of the scale set's network interfaces.
// The query yields one list per interface; those are flattened one level.
// Entries that are not strings are returned as nil.
func (c *Client) ListIPs(ctx context.Context, resourceGroup, vmssName string) ([]*string, error) {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "azcli.Client.ListIPs",
		tele.KVP("resourceGroup", resourceGroup),
		tele.KVP("scaleSet", vmssName),
	)
	defer done()

	out, err := c.Runner.Run(ctx,
		"vmss", "nic", "list",
		"--resource-group", resourceGroup,
		"--vmss-name", vmssName,
		"--query", primaryIPsQuery,
		"-o", "json",
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list network interfaces of scale set %s", vmssName)
	}

	var raw []interface{}
	if err := json.Unmarshal(out, &raw); err != nil {
		return nil, errors.Wrap(err, "failed to parse scale set private IPs")
	}
	return flattenIPs(raw), nil
}

// GetSecret returns the current value of a Key Vault secret. A null value is returned as "".
func (c *Client) GetSecret(ctx context.Context, vaultName, secretName string) (string, error) {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "azcli.Client.GetSecret",
		tele.KVP("keyVault", vaultName),
		tele.KVP("secret", secretName),
	)
	defer done()

	out, err := c.Runner.Run(ctx,
		"keyvault", "secret", "show",
		"--vault-name", vaultName,
		"--name", secretName,
		"--query", secretValueQuery,
		"-o", "json",
	)
	if err != nil {
		return "", errors.Wrapf(err, "failed to show secret %s in key vault %s", secretName, vaultName)
	}

	var value *string
	if err := json.Unmarshal(out, &value); err != nil {
		return "", errors.Wrap(err, "failed to parse secret value")
	}
	return ptr.Deref(value, ""), nil
}

func flattenIPs(raw []interface{}) []*string {
	ips := make([]*string, 0, len(raw))
	for _, item := range raw {
		nested, ok := item.([]interface{})
		if !ok {
			ips = append(ips, asString(item))
			continue
		}
		for _, ip := range nested {
			ips = append(ips, asString(ip))
		}
	}
	return ips
}

func asString(v interface{}) *string {
	if s, ok := v.(string); ok {
		return ptr.To(s)
	}
	return nil
}
