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

package scalesetvms

import (
	"context"

	"github.com/pkg/errors"
	"k8s.io/utils/ptr"

	"sigs.k8s.io/azure-vmss-inventory/azure"
	"sigs.k8s.io/azure-vmss-inventory/util/tele"
)

const serviceName = "scalesetvms"

// Service provides operations on the VMs of a scale set.
type Service struct {
	Client Client
}

// NewService creates a new service.
func NewService(auth azure.Authorizer) (*Service, error) {
	client, err := newClient(auth)
	if err != nil {
		return nil, err
	}
	return &Service{Client: client}, nil
}

// Name returns the service name.
func (s *Service) Name() string {
	return serviceName
}

// ListInstanceNames returns the names of the scale set's VMs in list order.
func (s *Service) ListInstanceNames(ctx context.Context, resourceGroup, vmssName string) ([]string, error) {
	ctx, log, done := tele.StartSpanWithLogger(ctx, "scalesetvms.Service.ListInstanceNames",
		tele.KVP("resourceGroup", resourceGroup),
		tele.KVP("scaleSet", vmssName),
	)
	defer done()

	vms, err := s.Client.List(ctx, resourceGroup, vmssName)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list instances of scale set %s", vmssName)
	}

	names := make([]string, 0, len(vms))
	for _, vm := range vms {
		if vm == nil {
			continue
		}
		names = append(names, ptr.Deref(vm.Name, ""))
	}
	log.V(4).Info("listed scale set instances", "count", len(names))
	return names, nil
}
