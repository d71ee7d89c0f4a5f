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

package terraform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	. "github.com/onsi/gomega"
)

const sampleOutputs = `{
  "resource_group_name": {"sensitive": false, "type": "string", "value": "rg-ansible"},
  "vmss_name": {"sensitive": false, "type": "string", "value": "vmss-k8s"},
  "key_vault_name": {"sensitive": false, "type": "string", "value": "kv-ansible"},
  "key_vault_secret_names": {
    "sensitive": false,
    "type": ["tuple", ["string", "string"]],
    "value": ["ssh-public-key", "ssh-private-key"]
  },
  "instance_count": {"sensitive": false, "type": "number", "value": 3},
  "mixed": {"sensitive": false, "type": ["tuple", ["string", "number"]], "value": ["a", 1]}
}`

func writeOutputs(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "terraform_outputs.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	g := NewWithT(t)

	outputs, err := Load(writeOutputs(t, sampleOutputs))
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(outputs).To(HaveLen(6))
	g.Expect(outputs.Has("vmss_name")).To(BeTrue())
	g.Expect(outputs.Has("subscription_id")).To(BeFalse())
}

func TestLoadMissingFile(t *testing.T) {
	g := NewWithT(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	g.Expect(err).To(HaveOccurred())
	g.Expect(IsNotFound(err)).To(BeTrue())
}

func TestLoadMalformed(t *testing.T) {
	g := NewWithT(t)

	_, err := Load(writeOutputs(t, "{not json"))
	g.Expect(err).To(HaveOccurred())
	g.Expect(IsNotFound(err)).To(BeFalse())
}

func TestAccessors(t *testing.T) {
	outputs, err := Load(writeOutputs(t, sampleOutputs))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		get     func() (interface{}, error)
		want    interface{}
		wantErr string
	}{
		{
			name: "string",
			get:  func() (interface{}, error) { return outputs.String("vmss_name") },
			want: "vmss-k8s",
		},
		{
			name:    "missing string",
			get:     func() (interface{}, error) { return outputs.String("nope") },
			wantErr: `terraform output "nope" not found`,
		},
		{
			name:    "string of wrong type",
			get:     func() (interface{}, error) { return outputs.String("instance_count") },
			wantErr: `terraform output "instance_count" is float64, not a string`,
		},
		{
			name: "string slice",
			get:  func() (interface{}, error) { return outputs.StringSlice("key_vault_secret_names") },
			want: []string{"ssh-public-key", "ssh-private-key"},
		},
		{
			name:    "string slice with non-string element",
			get:     func() (interface{}, error) { return outputs.StringSlice("mixed") },
			wantErr: `terraform output "mixed" element 1 is float64, not a string`,
		},
		{
			name: "string at index",
			get:  func() (interface{}, error) { return outputs.StringAt("key_vault_secret_names", 1) },
			want: "ssh-private-key",
		},
		{
			name:    "string at out of range index",
			get:     func() (interface{}, error) { return outputs.StringAt("key_vault_secret_names", 2) },
			wantErr: `terraform output "key_vault_secret_names" has 2 elements, index 2 is out of range`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewWithT(t)
			got, err := tc.get()
			if tc.wantErr != "" {
				g.Expect(err).To(MatchError(tc.wantErr))
				return
			}
			g.Expect(err).NotTo(HaveOccurred())
			g.Expect(got).To(Equal(tc.want))
		})
	}
}

func TestStringAtChecksOnlyIndexedElement(t *testing.T) {
	g := NewWithT(t)
	outputs := Outputs{
		"key_vault_secret_names": {Value: []interface{}{42.0, "ssh-private-key", nil}},
	}

	got, err := outputs.StringAt("key_vault_secret_names", 1)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(got).To(Equal("ssh-private-key"))

	_, err = outputs.StringAt("key_vault_secret_names", 0)
	g.Expect(err).To(MatchError(`terraform output "key_vault_secret_names" element 0 is float64, not a string`))
}

func TestResolvePath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("paths are unix style")
	}
	tests := []struct {
		name string
		path string
		dir  string
		want string
	}{
		{name: "relative to the executable", path: "../terraform/terraform_outputs.json", dir: "/opt/repo/ansible", want: "/opt/repo/terraform/terraform_outputs.json"},
		{name: "file next to the executable", path: "terraform_outputs.json", dir: "/opt/repo/ansible", want: "/opt/repo/ansible/terraform_outputs.json"},
		{name: "absolute path is kept", path: "/etc/terraform/outputs.json", dir: "/opt/repo/ansible", want: "/etc/terraform/outputs.json"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewWithT(t)
			g.Expect(ResolvePath(tc.path, tc.dir)).To(Equal(filepath.FromSlash(tc.want)))
		})
	}
}

func TestExecutableDir(t *testing.T) {
	g := NewWithT(t)
	exe, err := os.Executable()
	g.Expect(err).NotTo(HaveOccurred())
	exe, err = filepath.EvalSymlinks(exe)
	g.Expect(err).NotTo(HaveOccurred())

	dir, err := ExecutableDir()
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(dir).To(Equal(filepath.Dir(exe)))
}
