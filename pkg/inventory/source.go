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

	"sigs.k8s.io/azure-vmss-inventory/azure/scope"
	"sigs.k8s.io/azure-vmss-inventory/azure/services/azcli"
	"sigs.k8s.io/azure-vmss-inventory/azure/services/keyvaults"
	"sigs.k8s.io/azure-vmss-inventory/azure/services/networkinterfaces"
	"sigs.k8s.io/azure-vmss-inventory/azure/services/scalesetvms"
	"sigs.k8s.io/azure-vmss-inventory/azure/services/secrets"
)

// Source queries Azure for the data an inventory is built from.
type Source interface {
	// ListInstances returns the instance names of a scale set in list order.
	ListInstances(ctx context.Context, resourceGroup, vmssName string) ([]string, error)
	// ListIPs returns the primary private IPs of a scale set's instances. A nil
	// entry is a value that was not a string.
	ListIPs(ctx context.Context, resourceGroup, vmssName string) ([]*string, error)
	// GetSecret returns the current value of a Key Vault secret.
	GetSecret(ctx context.Context, vaultName, secretName string) (string, error)
}

var (
	_ Source = (*azcli.Client)(nil)
	_ Source = (*sdkSource)(nil)
)

// NewSource returns the Source selected by the scope's backend. azPath is only
// used by the CLI backend.
func NewSource(s *scope.InventoryScope, azPath string) (Source, error) {
	switch s.Backend() {
	case scope.BackendCLI:
		return azcli.New(azPath), nil
	case scope.BackendSDK:
		return newSDKSource(s)
	default:
		return nil, errors.Errorf("invalid backend %q", s.Backend())
	}
}

// sdkSource queries Azure through the Azure SDK for Go.
type sdkSource struct {
	resourceGroup string
	vms           *scalesetvms.Service
	nics          *networkinterfaces.Service
	vaults        *keyvaults.Service
	secrets       *secrets.Service
}

func newSDKSource(s *scope.InventoryScope) (*sdkSource, error) {
	vms, err := scalesetvms.NewService(s)
	if err != nil {
		return nil, err
	}
	nics, err := networkinterfaces.NewService(s)
	if err != nil {
		return nil, err
	}
	vaults, err := keyvaults.New(s)
	if err != nil {
		return nil, err
	}
	secretsSvc, err := secrets.New(s)
	if err != nil {
		return nil, err
	}
	return &sdkSource{
		resourceGroup: s.ResourceGroup(),
		vms:           vms,
		nics:          nics,
		vaults:        vaults,
		secrets:       secretsSvc,
	}, nil
}

func (s *sdkSource) ListInstances(ctx context.Context, resourceGroup, vmssName string) ([]string, error) {
	return s.vms.ListInstanceNames(ctx, resourceGroup, vmssName)
}

func (s *sdkSource) ListIPs(ctx context.Context, resourceGroup, vmssName string) ([]*string, error) {
	return s.nics.ListPrimaryPrivateIPs(ctx, resourceGroup, vmssName)
}

// GetSecret looks the vault up in the scale set's resource group to find its URI.
func (s *sdkSource) GetSecret(ctx context.Context, vaultName, secretName string) (string, error) {
	vaultURL := s.vaults.VaultURI(ctx, s.resourceGroup, vaultName)
	return s.secrets.GetSecretValue(ctx, vaultURL, secretName)
}
