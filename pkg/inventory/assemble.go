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
	"strings"

	"github.com/go-logr/logr"
)

// Assemble pairs instance names with IPs by position and returns the inventory.
// Pairing stops at the shorter of the two lists. A pair whose IP is nil or empty
// is skipped. The instance at index 0 is the master when its pair is kept; every
// other kept instance is a worker.
func Assemble(log logr.Logger, names []string, ips []*string, vars GroupVars) *Inventory {
	inv := New(vars)
	hosts := inv.ScaleSet().Hosts

	if len(names) != len(ips) {
		log.Info("Number of instances and IPs do not match.", "instances", len(names), "ips", len(ips))
	}

	n := min(len(names), len(ips))
	for i := 0; i < n; i++ {
		name, ip := names[i], ips[i]
		if ip == nil {
			log.Info("IP for instance is not a string. Skipping.", "instance", name)
			inv.skipped++
			continue
		}
		if *ip == "" {
			log.Info("No IP found for instance. Skipping.", "instance", name)
			inv.skipped++
			continue
		}
		hosts[*ip] = Host{
			IsMaster: i == 0,
			IsWorker: i != 0,
			NodeName: NodeName(name),
		}
		log.Info("Host added", "host", *ip, "instance", name, "isMaster", i == 0, "isWorker", i != 0)
	}
	return inv
}

// NodeName returns the Kubernetes node name of a scale set instance.
func NodeName(instanceName string) string {
	return strings.ReplaceAll(instanceName, "_", "-")
}
