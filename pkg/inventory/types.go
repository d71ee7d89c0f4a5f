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

// Package inventory builds the Ansible inventory of an Azure Virtual Machine Scale Set.
package inventory

// GroupName is the Ansible group holding the scale set's hosts.
const GroupName = "vmss"

type (
	// Inventory is an Ansible YAML/JSON inventory document.
	Inventory struct {
		All AllGroup `json:"all" yaml:"all"`

		skipped int
	}

	// AllGroup is the implicit top level "all" group.
	AllGroup struct {
		Children map[string]*Group `json:"children" yaml:"children"`
	}

	// Group is an Ansible group keyed by host address.
	Group struct {
		Hosts map[string]Host `json:"hosts" yaml:"hosts"`
		Vars  GroupVars       `json:"vars" yaml:"vars"`
	}

	// Host holds the variables of one scale set instance.
	Host struct {
		IsMaster bool   `json:"is_master" yaml:"is_master"`
		IsWorker bool   `json:"is_worker" yaml:"is_worker"`
		NodeName string `json:"node_name" yaml:"node_name"`
	}

	// GroupVars are the connection variables shared by every host.
	GroupVars struct {
		AnsibleUser              string `json:"ansible_user" yaml:"ansible_user"`
		AnsibleSSHPrivateKeyFile string `json:"ansible_ssh_private_key_file" yaml:"ansible_ssh_private_key_file"`
	}
)

// New returns an inventory with an empty scale set group.
func New(vars GroupVars) *Inventory {
	return &Inventory{
		All: AllGroup{
			Children: map[string]*Group{
				GroupName: {
					Hosts: map[string]Host{},
					Vars:  vars,
				},
			},
		},
	}
}

// Skipped returns the number of instances left out because their IP was missing.
func (i *Inventory) Skipped() int {
	return i.skipped
}

// ScaleSet returns the scale set group.
func (i *Inventory) ScaleSet() *Group {
	return i.All.Children[GroupName]
}
