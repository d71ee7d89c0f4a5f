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

package scope

import (
	"context"
	"os"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/pkg/errors"

	"sigs.k8s.io/azure-vmss-inventory/azure"
	"sigs.k8s.io/azure-vmss-inventory/pkg/terraform"
	"sigs.k8s.io/azure-vmss-inventory/util/tele"
)

const (
	// BackendCLI queries Azure through the az command line tool.
	BackendCLI = "cli"
	// BackendSDK queries Azure through the Azure SDK for Go.
	BackendSDK = "sdk"

	// OutputFormatJSON writes the inventory as indented JSON.
	OutputFormatJSON = "json"
	// OutputFormatYAML writes the inventory as YAML.
	OutputFormatYAML = "yaml"

	// SubscriptionIDEnvVarName is the env var consulted when no subscription ID flag is set.
	SubscriptionIDEnvVarName = "AZURE_SUBSCRIPTION_ID"
	// EnvironmentEnvVarName is the env var consulted when no cloud environment flag is set.
	EnvironmentEnvVarName = "AZURE_ENVIRONMENT"
)

// InventoryConfig is the configuration of a single inventory run.
type InventoryConfig struct {
	ResourceGroup    string
	ScaleSetName     string
	KeyVaultName     string
	SSHKeySecretName string

	Backend        string
	SubscriptionID string
	Environment    string

	AnsibleUser   string
	KeyFile       string
	InventoryFile string
	OutputFormat  string
	StrictSecret  bool
}

// InventoryScopeParams defines the input parameters used to create a new InventoryScope.
type InventoryScopeParams struct {
	TerraformOutputsPath string
	Backend              string
	SubscriptionID       string
	Environment          string
	AnsibleUser          string
	KeyFile              string
	InventoryFile        string
	OutputFormat         string
	StrictSecret         bool
}

// InventoryScope defines the scope of a single inventory run. It is built once
// at process start and handed to every operation.
type InventoryScope struct {
	InventoryConfig
	credential azcore.TokenCredential
}

// NewInventoryScope reads the terraform outputs and creates a new InventoryScope from the supplied parameters.
// A credential is created only for the SDK backend.
func NewInventoryScope(ctx context.Context, params InventoryScopeParams) (*InventoryScope, error) {
	_, log, done := tele.StartSpanWithLogger(ctx, "scope.NewInventoryScope", tele.KVP("outputs", params.TerraformOutputsPath))
	defer done()

	outputs, err := terraform.Load(params.TerraformOutputsPath)
	if err != nil {
		return nil, err
	}

	config, err := configFromOutputs(outputs)
	if err != nil {
		return nil, err
	}
	config.AnsibleUser = stringOrDefault(params.AnsibleUser, azure.DefaultAnsibleUser)
	config.KeyFile = stringOrDefault(params.KeyFile, azure.DefaultSSHPrivateKeyFile)
	config.InventoryFile = stringOrDefault(params.InventoryFile, azure.DefaultInventoryFile)
	config.OutputFormat = stringOrDefault(params.OutputFormat, OutputFormatJSON)
	config.StrictSecret = params.StrictSecret
	config.Environment = stringOrDefault(params.Environment, os.Getenv(EnvironmentEnvVarName))
	config.SubscriptionID = stringOrDefault(params.SubscriptionID, stringOrDefault(os.Getenv(SubscriptionIDEnvVarName), config.SubscriptionID))

	if config.OutputFormat != OutputFormatJSON && config.OutputFormat != OutputFormatYAML {
		return nil, errors.Errorf("invalid output format %q, must be one of %q or %q", config.OutputFormat, OutputFormatJSON, OutputFormatYAML)
	}

	config.Backend = stringOrDefault(params.Backend, BackendCLI)

	s := &InventoryScope{InventoryConfig: config}
	switch s.Backend() {
	case BackendCLI:
	case BackendSDK:
		if s.SubscriptionID() == "" {
			return nil, errors.Errorf("a subscription ID is required for the %s backend, set --subscription-id or %s", BackendSDK, SubscriptionIDEnvVarName)
		}
		cred, err := newDefaultCredential(s.CloudEnvironment())
		if err != nil {
			return nil, errors.Wrap(err, "failed to create Azure credential")
		}
		s.credential = cred
	default:
		return nil, errors.Errorf("invalid backend %q, must be one of %q or %q", params.Backend, BackendCLI, BackendSDK)
	}

	log.V(2).Info("loaded inventory configuration",
		"resourceGroup", s.ResourceGroup(),
		"scaleSet", s.ScaleSetName(),
		"keyVault", s.KeyVaultName(),
	)
	return s, nil
}

// NewInventoryScopeFromConfig creates an InventoryScope from an already resolved configuration.
func NewInventoryScopeFromConfig(config InventoryConfig, credential azcore.TokenCredential) *InventoryScope {
	return &InventoryScope{InventoryConfig: config, credential: credential}
}

func configFromOutputs(outputs terraform.Outputs) (InventoryConfig, error) {
	var (
		config InventoryConfig
		err    error
	)
	if config.ResourceGroup, err = outputs.String(azure.ResourceGroupOutput); err != nil {
		return config, err
	}
	if config.ScaleSetName, err = outputs.String(azure.ScaleSetNameOutput); err != nil {
		return config, err
	}
	if config.KeyVaultName, err = outputs.String(azure.KeyVaultNameOutput); err != nil {
		return config, err
	}
	if config.SSHKeySecretName, err = outputs.StringAt(azure.KeyVaultSecretNamesOutput, azure.SSHPrivateKeySecretIndex); err != nil {
		return config, err
	}
	if outputs.Has(azure.SubscriptionIDOutput) {
		if config.SubscriptionID, err = outputs.String(azure.SubscriptionIDOutput); err != nil {
			return config, err
		}
	}
	return config, nil
}

func stringOrDefault(value, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}

// ResourceGroup returns the resource group of the scale set.
func (s *InventoryScope) ResourceGroup() string {
	return s.InventoryConfig.ResourceGroup
}

// ScaleSetName returns the scale set name.
func (s *InventoryScope) ScaleSetName() string {
	return s.InventoryConfig.ScaleSetName
}

// KeyVaultName returns the name of the key vault holding the SSH private key.
func (s *InventoryScope) KeyVaultName() string {
	return s.InventoryConfig.KeyVaultName
}

// SSHKeySecretName returns the name of the SSH private key secret.
func (s *InventoryScope) SSHKeySecretName() string {
	return s.InventoryConfig.SSHKeySecretName
}

// Backend returns the name of the backend used to query Azure.
func (s *InventoryScope) Backend() string {
	return s.InventoryConfig.Backend
}

// SubscriptionID returns the Azure subscription ID.
func (s *InventoryScope) SubscriptionID() string {
	return s.InventoryConfig.SubscriptionID
}

// CloudEnvironment returns the Azure cloud environment name.
func (s *InventoryScope) CloudEnvironment() string {
	return s.InventoryConfig.Environment
}

// Token returns the Azure credential. It is nil unless the scope was created for the SDK backend.
func (s *InventoryScope) Token() azcore.TokenCredential {
	return s.credential
}

// AnsibleUser returns the SSH user written to the inventory.
func (s *InventoryScope) AnsibleUser() string {
	return s.InventoryConfig.AnsibleUser
}

// KeyFilePath returns where the SSH private key is written.
func (s *InventoryScope) KeyFilePath() string {
	return s.InventoryConfig.KeyFile
}

// InventoryFilePath returns where the inventory document is written.
func (s *InventoryScope) InventoryFilePath() string {
	return s.InventoryConfig.InventoryFile
}

// OutputFormat returns the inventory document format.
func (s *InventoryScope) OutputFormat() string {
	return s.InventoryConfig.OutputFormat
}

// StrictSecret returns true if any failure to retrieve the SSH private key aborts the run.
func (s *InventoryScope) StrictSecret() bool {
	return s.InventoryConfig.StrictSecret
}
