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
	"testing"

	. "github.com/onsi/gomega"

	"sigs.k8s.io/azure-vmss-inventory/azure"
)

func TestNewDefaultCredential(t *testing.T) {
	g := NewWithT(t)
	t.Setenv("AZURE_CLIENT_CERTIFICATE_PATH", "")
	os.Unsetenv("AZURE_CLIENT_CERTIFICATE_PATH")
	t.Setenv("AZURE_CERTIFICATE_PATH", "/etc/azure/cert.pem")
	t.Setenv("AZURE_CERTIFICATE_PASSWORD", "secret")
	t.Setenv("AZURE_CLIENT_CERTIFICATE_PASSWORD", "")

	cred, err := newDefaultCredential(azure.PublicCloudName)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(cred).NotTo(BeNil())
	g.Expect(os.Getenv("AZURE_CLIENT_CERTIFICATE_PATH")).To(Equal("/etc/azure/cert.pem"))
	g.Expect(os.Getenv("AZURE_CLIENT_CERTIFICATE_PASSWORD")).To(Equal("secret"))
}

func TestNewDefaultCredentialUnknownCloud(t *testing.T) {
	g := NewWithT(t)
	_, err := newDefaultCredential("AzureStackCloud")
	g.Expect(err).To(MatchError(`invalid cloud environment "AzureStackCloud"`))
}
