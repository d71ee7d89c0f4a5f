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
	"fmt"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/cloud"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/pkg/errors"

	"sigs.k8s.io/azure-vmss-inventory/util/tele"
	"sigs.k8s.io/azure-vmss-inventory/version"
)

const (
	// DefaultAnsibleUser is the SSH user Ansible connects to scale set instances with.
	DefaultAnsibleUser = "azureadmin"
	// DefaultSSHPrivateKeyFile is where the SSH private key fetched from Key Vault is written.
	DefaultSSHPrivateKeyFile = "ssh_private_key.pem"
	// DefaultInventoryFile is where the inventory document is written.
	DefaultInventoryFile = "azure_vmss_inventory.json"
	// DefaultTerraformOutputsFile is the `terraform output -json` document. A relative path is
	// resolved against the directory of the executable, not the working directory.
	DefaultTerraformOutputsFile = "../terraform/terraform_outputs.json"
)

const (
	// ResourceGroupOutput is the terraform output holding the resource group name.
	ResourceGroupOutput = "resource_group_name"
	// ScaleSetNameOutput is the terraform output holding the scale set name.
	ScaleSetNameOutput = "vmss_name"
	// KeyVaultNameOutput is the terraform output holding the key vault name.
	KeyVaultNameOutput = "key_vault_name"
	// KeyVaultSecretNamesOutput is the terraform output listing the key vault secret names.
	KeyVaultSecretNamesOutput = "key_vault_secret_names"
	// SubscriptionIDOutput is the optional terraform output holding the subscription ID.
	SubscriptionIDOutput = "subscription_id"
	// SSHPrivateKeySecretIndex is the position of the SSH private key in KeyVaultSecretNamesOutput.
	SSHPrivateKeySecretIndex = 1
)

const (
	// PublicCloudName is the name of the Azure public cloud.
	PublicCloudName = "AzurePublicCloud"
	// ChinaCloudName is the name of the Azure China cloud.
	ChinaCloudName = "AzureChinaCloud"
	// USGovernmentCloudName is the name of the Azure US Government cloud.
	USGovernmentCloudName = "AzureUSGovernmentCloud"
)

// UserAgent specifies a string to append to the agent identifier.
func UserAgent() string {
	return fmt.Sprintf("vmss-inventory/%s", version.Get().String())
}

// CloudConfiguration returns the azcore cloud configuration for the named Azure cloud.
// An empty name selects the public cloud.
func CloudConfiguration(environment string) (cloud.Configuration, error) {
	switch environment {
	case "", PublicCloudName:
		return cloud.AzurePublic, nil
	case ChinaCloudName:
		return cloud.AzureChina, nil
	case USGovernmentCloudName:
		return cloud.AzureGovernment, nil
	default:
		return cloud.Configuration{}, errors.Errorf("invalid cloud environment %q", environment)
	}
}

// KeyVaultDNSSuffix returns the Key Vault DNS suffix of the named Azure cloud.
func KeyVaultDNSSuffix(environment string) string {
	switch environment {
	case ChinaCloudName:
		return "vault.azure.cn"
	case USGovernmentCloudName:
		return "vault.usgovcloudapi.net"
	default:
		return "vault.azure.net"
	}
}

// KeyVaultURL returns the data plane URL of a key vault in the named Azure cloud.
func KeyVaultURL(environment, vaultName string) string {
	return fmt.Sprintf("https://%s.%s/", vaultName, KeyVaultDNSSuffix(environment))
}

// ClientOptions returns the azcore client options shared by ARM and data plane clients.
func ClientOptions(environment string, extraPolicies ...policy.Policy) (azcore.ClientOptions, error) {
	cloudConfig, err := CloudConfiguration(environment)
	if err != nil {
		return azcore.ClientOptions{}, err
	}

	opts := azcore.ClientOptions{
		Cloud: cloudConfig,
		Telemetry: policy.TelemetryOptions{
			ApplicationID: UserAgent(),
		},
		PerCallPolicies: []policy.Policy{
			correlationIDPolicy{},
		},
	}
	opts.PerCallPolicies = append(opts.PerCallPolicies, extraPolicies...)

	return opts, nil
}

// ARMClientOptions returns default ARM client options for the named Azure cloud.
func ARMClientOptions(environment string, extraPolicies ...policy.Policy) (*arm.ClientOptions, error) {
	opts, err := ClientOptions(environment, extraPolicies...)
	if err != nil {
		return nil, err
	}
	return &arm.ClientOptions{ClientOptions: opts}, nil
}

// correlationIDPolicy adds the run's correlation ID to each outgoing request.
type correlationIDPolicy struct{}

// Do implements policy.Policy.
func (p correlationIDPolicy) Do(req *policy.Request) (*http.Response, error) {
	if corrID, ok := tele.CorrIDFromCtx(req.Raw().Context()); ok {
		req.Raw().Header.Set(tele.CorrIDHeader, string(corrID))
	}
	return req.Next()
}
