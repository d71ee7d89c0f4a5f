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

	"github.com/pkg/errors"
	"k8s.io/utils/ptr"

	"sigs.k8s.io/azure-vmss-inventory/azure"
	"sigs.k8s.io/azure-vmss-inventory/util/tele"
)

const serviceName = "secrets"

// Service reads Key Vault secrets.
type Service struct {
	Client Client
}

// New creates a new service.
func New(auth azure.Authorizer) (*Service, error) {
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

// GetSecretValue returns the current value of a secret. A secret without a value is returned as "".
func (s *Service) GetSecretValue(ctx context.Context, vaultURL, secretName string) (string, error) {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "secrets.Service.GetSecretValue",
		tele.KVP("vaultURL", vaultURL),
		tele.KVP("secret", secretName),
	)
	defer done()

	value, err := s.Client.GetSecret(ctx, vaultURL, secretName)
	if err != nil {
		return "", errors.Wrapf(err, "failed to get secret %s from %s", secretName, vaultURL)
	}
	return ptr.Deref(value, ""), nil
}
