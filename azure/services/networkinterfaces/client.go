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

	"sigs.k8s.io/azure-vmss-inventory/azure"
	"sigs.k8s.io/azure-vmss-inventory/util/tele"
)

// Client wraps go-sdk.
type Client interface {
	ListScaleSetInterfaces(ctx context.Context, resourceGroupName, vmssName string) ([]*armnetwork.Interface, error)
}

// azureClient contains the Azure go-sdk Client.
type azureClient struct {
	interfaces *armnetwork.InterfacesClient
}

var _ Client = &azureClient{}

// newClient creates a new network interfaces client from an authorizer.
func newClient(auth azure.Authorizer) (*azureClient, error) {
	opts, err := azure.ARMClientOptions(auth.CloudEnvironment())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create networkinterfaces client options")
	}
	c, err := armnetwork.NewInterfacesClient(auth.SubscriptionID(), auth.Token(), opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create armnetwork interfaces client")
	}
	return &azureClient{c}, nil
}

// ListScaleSetInterfaces returns the network interfaces of every VM in a scale set.
func (ac *azureClient) ListScaleSetInterfaces(ctx context.Context, resourceGroupName, vmssName string) ([]*armnetwork.Interface, error) {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "networkinterfaces.azureClient.ListScaleSetInterfaces")
	defer done()

	var nics []*armnetwork.Interface
	pager := ac.interfaces.NewListVirtualMachineScaleSetNetworkInterfacesPager(resourceGroupName, vmssName, nil)
	for pager.More() {
		nextResult, err := pager.NextPage(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "could not iterate scale set network interfaces")
		}
		nics = append(nics, nextResult.Value...)
	}
	return nics, nil
}
