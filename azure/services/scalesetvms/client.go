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

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v5"
	"github.com/pkg/errors"

	"sigs.k8s.io/azure-vmss-inventory/azure"
	"sigs.k8s.io/azure-vmss-inventory/util/tele"
)

// Client wraps go-sdk.
type Client interface {
	List(ctx context.Context, resourceGroupName, vmssName string) ([]*armcompute.VirtualMachineScaleSetVM, error)
}

// azureClient contains the Azure go-sdk Client.
type azureClient struct {
	scalesetvms *armcompute.VirtualMachineScaleSetVMsClient
}

var _ Client = &azureClient{}

// newClient creates a new scale set VMs client from an authorizer.
func newClient(auth azure.Authorizer) (*azureClient, error) {
	opts, err := azure.ARMClientOptions(auth.CloudEnvironment())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create scalesetvms client options")
	}
	factory, err := armcompute.NewClientFactory(auth.SubscriptionID(), auth.Token(), opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create armcompute client factory")
	}
	return &azureClient{factory.NewVirtualMachineScaleSetVMsClient()}, nil
}

// List returns every VM of a scale set, following next links until the last page.
func (ac *azureClient) List(ctx context.Context, resourceGroupName, vmssName string) ([]*armcompute.VirtualMachineScaleSetVM, error) {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "scalesetvms.azureClient.List")
	defer done()

	var vms []*armcompute.VirtualMachineScaleSetVM
	pager := ac.scalesetvms.NewListPager(resourceGroupName, vmssName, nil)
	for pager.More() {
		nextResult, err := pager.NextPage(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "could not iterate scale set VMs")
		}
		vms = append(vms, nextResult.Value...)
	}
	return vms, nil
}
