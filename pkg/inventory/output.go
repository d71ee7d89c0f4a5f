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
	"bytes"
	"encoding/json"
	"os"
	"sort"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"sigs.k8s.io/azure-vmss-inventory/azure/scope"
)

// Marshal encodes the inventory document in the given format. JSON is indented
// by two spaces without a trailing newline. Hosts are ordered by address.
func Marshal(inv *Inventory, format string) ([]byte, error) {
	switch format {
	case scope.OutputFormatJSON:
		return json.MarshalIndent(inv, "", "  ")
	case scope.OutputFormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(inv); err != nil {
			return nil, errors.Wrap(err, "failed to encode inventory as yaml")
		}
		if err := enc.Close(); err != nil {
			return nil, errors.Wrap(err, "failed to encode inventory as yaml")
		}
		return buf.Bytes(), nil
	default:
		return nil, errors.Errorf("unsupported output format %q", format)
	}
}

// WriteFile writes the inventory document to path, replacing any previous content.
func WriteFile(inv *Inventory, path, format string) error {
	data, err := Marshal(inv, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write inventory %s", path)
	}
	return nil
}

type (
	scriptInventory struct {
		Meta     scriptMeta  `json:"_meta"`
		All      scriptAll   `json:"all"`
		ScaleSet scriptGroup `json:"vmss"`
	}

	scriptMeta struct {
		HostVars map[string]Host `json:"hostvars"`
	}

	scriptAll struct {
		Children []string `json:"children"`
	}

	scriptGroup struct {
		Hosts []string  `json:"hosts"`
		Vars  GroupVars `json:"vars"`
	}
)

// ScriptList encodes the inventory in the format Ansible expects from an
// inventory script called with --list.
func ScriptList(inv *Inventory) ([]byte, error) {
	group := inv.ScaleSet()
	hosts := make([]string, 0, len(group.Hosts))
	for host := range group.Hosts {
		hosts = append(hosts, host)
	}
	sort.Strings(hosts)

	return json.MarshalIndent(scriptInventory{
		Meta:     scriptMeta{HostVars: group.Hosts},
		All:      scriptAll{Children: []string{GroupName}},
		ScaleSet: scriptGroup{Hosts: hosts, Vars: group.Vars},
	}, "", "  ")
}

// ScriptHost encodes the variables of host in the format Ansible expects from an
// inventory script called with --host. An unknown host has no variables.
func ScriptHost(inv *Inventory, host string) ([]byte, error) {
	if h, ok := inv.ScaleSet().Hosts[host]; ok {
		return json.MarshalIndent(h, "", "  ")
	}
	return []byte("{}"), nil
}
