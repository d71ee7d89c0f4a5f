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

	"k8s.io/utils/ptr"

	"sigs.k8s.io/azure-vmss-inventory/azure"
	"sigs.k8s.io/azure-vmss-inventory/util/tele"
)

const serviceName = "keyvaults"

// Service resolves Key Vault data plane URIs.
type Service struct {
	Client      Client
	Environment string
}

// New creates a new service.
func New(auth azure.Authorizer) (*Service, error) {
	client, err := newClient(auth)
	if err != nil {
		return nil, err
	}
	return &Service{
		Client:      client,
		Environment: auth.CloudEnvironment(),
	}, nil
}

// Name returns the service name.
func (s *Service) Name() string {
	return serviceName
}

// VaultURI returns the data plane URI of a vault. When the vault cannot be read
// from the resource group, the URI is derived from the cloud's Key Vault DNS suffix.
func (s *Service) VaultURI(ctx context.Context, resourceGroup, vaultName string) string {
	ctx, log, done := tele.StartSpanWithLogger(ctx, "keyvaults.Service.VaultURI",
		tele.KVP("resourceGroup", resourceGroup),
		tele.KVP("keyVault", vaultName),
	)
	defer done()

	fallback := azure.KeyVaultURL(s.Environment, vaultName)

	vault, err := s.Client.Get(ctx, resourceGroup, vaultName)
	if err != nil {
		if azure.ResourceNotFound(err) {
			log.V(2).Info("key vault not found in resource group, using default URI", "uri", fallback)
		} else {
			log.V(2).Info("failed to get key vault, using default URI", "uri", fallback, "error", err.Error())
		}
		return fallback
	}
	if vault.Properties == nil || ptr.Deref(vault.Properties.VaultURI, "") == "" {
		return fallback
	}
	return *vault.Properties.VaultURI
}
