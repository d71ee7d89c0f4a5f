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

package azure

import (
	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
)

// Authorizer is an interface which can get the subscription ID, cloud environment, and credential for an Azure service.
type Authorizer interface {
	SubscriptionID() string
	CloudEnvironment() string
	Token() azcore.TokenCredential
}

// ScaleSetDescriber is an interface which can get the identifiers of the scale set being inventoried.
type ScaleSetDescriber interface {
	ResourceGroup() string
	ScaleSetName() string
}

// KeyVaultDescriber is an interface which can get the identifiers of the SSH private key secret.
type KeyVaultDescriber interface {
	KeyVaultName() string
	SSHKeySecretName() string
}
