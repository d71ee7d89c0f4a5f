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

package keyvaults

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/keyvault/armkeyvault"
	"github.com/pkg/errors"

	"sigs.k8s.io/azure-vmss-inventory/azure"
	"sigs.k8s.io/azure-vmss-inventory/util/tele"
)

// Client wraps go-sdk.
type Client interface {
	Get(ctx context.Context, resourceGroupName, vaultName string) (armkeyvault.Vault, error)
}

// azureClient contains the Azure go-sdk Client.
type azureClient struct {
	vaults *armkeyvault.VaultsClient
}

var _ Client = &azureClient{}

// newClient creates a new Key Vault client from an authorizer.
func newClient(auth azure.Authorizer) (*azureClient, error) {
	opts, err := azure.ARMClientOptions(auth.CloudEnvironment())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create keyvault client options")
	}
	vaultsClient, err := armkeyvault.NewVaultsClient(auth.SubscriptionID(), auth.Token(), opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create armkeyvault vaults client")
	}
	return &azureClient{vaults: vaultsClient}, nil
}

// Get gets the specified key vault.
//
// ResourceGroupName is the name of the Resource Group to which the vault belongs.
// VaultName is the name of the vault.
func (ac *azureClient) Get(ctx context.Context, resourceGroupName, vaultName string) (armkeyvault.Vault, error) {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "keyvaults.azureClient.Get")
	defer done()

	resp, err := ac.vaults.Get(ctx, resourceGroupName, vaultName, nil)
	if err != nil {
		return armkeyvault.Vault{}, err
	}
	return resp.Vault, nil
}
