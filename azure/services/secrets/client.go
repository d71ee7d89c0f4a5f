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

package secrets

import (
	"context"
	"sync"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/security/keyvault/azsecrets"
	"github.com/pkg/errors"

	"sigs.k8s.io/azure-vmss-inventory/azure"
	"sigs.k8s.io/azure-vmss-inventory/util/tele"
)

// latestVersion selects the current version of a secret.
const latestVersion = ""

// Client wraps go-sdk.
type Client interface {
	GetSecret(ctx context.Context, vaultURL, secretName string) (*string, error)
}

// azureClient contains the Azure go-sdk Client, one per vault.
type azureClient struct {
	credential azcore.TokenCredential
	opts       azcore.ClientOptions

	mu      sync.Mutex
	secrets map[string]*azsecrets.Client
}

var _ Client = &azureClient{}

// newClient creates a new secrets client from an authorizer.
func newClient(auth azure.Authorizer) (*azureClient, error) {
	opts, err := azure.ClientOptions(auth.CloudEnvironment())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create secrets client options")
	}
	return &azureClient{
		credential: auth.Token(),
		opts:       opts,
		secrets:    map[string]*azsecrets.Client{},
	}, nil
}

func (ac *azureClient) secretsClient(vaultURL string) (*azsecrets.Client, error) {
	ac.mu.Lock()
	defer ac.mu.Unlock()

	if c, ok := ac.secrets[vaultURL]; ok {
		return c, nil
	}
	c, err := azsecrets.NewClient(vaultURL, ac.credential, &azsecrets.ClientOptions{ClientOptions: ac.opts})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create azsecrets client for %s", vaultURL)
	}
	ac.secrets[vaultURL] = c
	return c, nil
}

// GetSecret gets the latest version of a secret.
func (ac *azureClient) GetSecret(ctx context.Context, vaultURL, secretName string) (*string, error) {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "secrets.azureClient.GetSecret")
	defer done()

	c, err := ac.secretsClient(vaultURL)
	if err != nil {
		return nil, err
	}
	resp, err := c.GetSecret(ctx, secretName, latestVersion, nil)
	if err != nil {
		return nil, err
	}
	return resp.Value, nil
}
