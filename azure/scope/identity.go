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
	"os"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"

	"sigs.k8s.io/azure-vmss-inventory/azure"
)

// newDefaultCredential returns a DefaultAzureCredential for the named cloud. It
// tries environment credentials, workload identity, managed identity and finally
// the az CLI login, which is what operators running the inventory by hand rely on.
func newDefaultCredential(environment string) (azcore.TokenCredential, error) {
	// azidentity uses different envvars for certificate authentication:
	//  azidentity: AZURE_CLIENT_CERTIFICATE_{PATH,PASSWORD}
	//  autorest: AZURE_CERTIFICATE_{PATH,PASSWORD}
	// Let's set them according to the envvars used by autorest, in case they are present
	_, azidSet := os.LookupEnv("AZURE_CLIENT_CERTIFICATE_PATH")
	path, autorestSet := os.LookupEnv("AZURE_CERTIFICATE_PATH")
	if !azidSet && autorestSet {
		os.Setenv("AZURE_CLIENT_CERTIFICATE_PATH", path)
		os.Setenv("AZURE_CLIENT_CERTIFICATE_PASSWORD", os.Getenv("AZURE_CERTIFICATE_PASSWORD"))
	}

	opts, err := azure.ClientOptions(environment)
	if err != nil {
		return nil, err
	}
	return azidentity.NewDefaultAzureCredential(&azidentity.DefaultAzureCredentialOptions{
		ClientOptions: opts,
	})
}
