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

package networkinterfaces

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v4"
	"github.com/pkg/errors"
	"k8s.io/utils/ptr"

	"sigs.k8s.io/azure-vmss-inventory/azure"
	"sigs.k8s.io/azure-vmss-inventory/util/tele"
)

const serviceName = "networkinterfaces"

// Service provides operations on the network interfaces of a scale set.
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

// ListPrimaryPrivateIPs returns the private IPs of the primary IP configurations
// of the scale set's network interfaces, in interface order. An interface without
// a primary configuration contributes nothing.
func (s *Service) ListPrimaryPrivateIPs(ctx context.Context, resourceGroup, vmssName string) ([]*string, error) {
	ctx, log, done := tele.StartSpanWithLogger(ctx, "networkinterfaces.Service.ListPrimaryPrivateIPs",
		tele.KVP("resourceGroup", resourceGroup),
		tele.KVP("scaleSet", vmssName),
	)
	defer done()

	nics, err := s.Client.ListScaleSetInterfaces(ctx, resourceGroup, vmssName)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list network interfaces of scale set %s", vmssName)
	}

	ips := make([]*string, 0, len(nics))
	for _, nic := range nics {
		ips = append(ips, primaryPrivateIPs(nic)...)
	}
	log.V(4).Info("listed scale set private IPs", "interfaces", len(nics), "count", len(ips))
	return ips, nil
}

func primaryPrivateIPs(nic *armnetwork.Interface) []*string {
	if nic == nil || nic.Properties == nil {
		return nil
	}
	var ips []*string
	for _, ipConfig := range nic.Properties.IPConfigurations {
		if ipConfig == nil || ipConfig.Properties == nil {
			continue
		}
		if !ptr.Deref(ipConfig.Properties.Primary, false) || ipConfig.Properties.PrivateIPAddress == nil {
			continue
		}
		ips = append(ips, ptr.To(*ipConfig.Properties.PrivateIPAddress))
	}
	return ips
}
