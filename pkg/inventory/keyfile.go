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
	"os"

	"github.com/pkg/errors"

	"sigs.k8s.io/azure-vmss-inventory/azure"
	"sigs.k8s.io/azure-vmss-inventory/util/tele"
)

// KeyFileMode is the mode of the written SSH private key.
const KeyFileMode os.FileMode = 0o400

// ErrEmptySecret is returned when the SSH private key secret has no value.
var ErrEmptySecret = errors.New("SSH private key not found in Key Vault")

// FetchSSHPrivateKey removes any previous key file, reads the SSH private key
// secret and writes it verbatim to keyFile, readable by the owner only.
// The previous key file is gone even when the secret cannot be read.
func FetchSSHPrivateKey(ctx context.Context, source Source, vault azure.KeyVaultDescriber, keyFile string) error {
	ctx, log, done := tele.StartSpanWithLogger(ctx, "inventory.FetchSSHPrivateKey",
		tele.KVP("keyVault", vault.KeyVaultName()),
		tele.KVP("secret", vault.SSHKeySecretName()),
	)
	defer done()

	if _, err := os.Lstat(keyFile); err == nil {
		if err := os.Remove(keyFile); err != nil {
			return errors.Wrapf(err, "failed to remove %s", keyFile)
		}
		log.Info("Existing private key file removed.", "path", keyFile)
	}

	value, err := source.GetSecret(ctx, vault.KeyVaultName(), vault.SSHKeySecretName())
	if err != nil {
		return err
	}
	if value == "" {
		return ErrEmptySecret
	}

	if err := os.WriteFile(keyFile, []byte(value), 0o600); err != nil {
		return errors.Wrapf(err, "failed to write %s", keyFile)
	}
	if err := os.Chmod(keyFile, KeyFileMode); err != nil {
		return errors.Wrapf(err, "failed to set mode of %s", keyFile)
	}
	log.Info("SSH private key fetched and saved.", "path", keyFile)
	return nil
}
