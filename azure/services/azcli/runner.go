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

package azcli

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/pkg/errors"

	"sigs.k8s.io/azure-vmss-inventory/util/tele"
)

const (
	// AzDefault is the default location of the az binary.
	AzDefault = "az"
	// AzEnvVarName is the env var name to specify an az binary location.
	AzEnvVarName = "AZ_PATH"
)

// GetAzExecutablePath returns the location of the az binary.
func GetAzExecutablePath() string {
	if azPath, set := os.LookupEnv(AzEnvVarName); set && azPath != "" {
		return azPath
	}
	return AzDefault
}

// Runner runs the az command line tool.
type Runner interface {
	// Run executes az with args and returns its standard output.
	Run(ctx context.Context, args ...string) ([]byte, error)
}

type execRunner struct {
	path string
}

var _ Runner = (*execRunner)(nil)

// NewRunner returns a Runner executing the az binary at path.
func NewRunner(path string) Runner {
	return &execRunner{path: path}
}

// Run executes az and returns its standard output. A launch failure or a
// non-zero exit is returned as an error carrying az's standard error.
func (r *execRunner) Run(ctx context.Context, args ...string) ([]byte, error) {
	ctx, log, done := tele.StartSpanWithLogger(ctx, "azcli.execRunner.Run")
	defer done()

	path, err := exec.LookPath(r.path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to find %s", r.path)
	}

	log.V(4).Info("running az", "command", shellquote.Join(append([]string{path}, args...)...))

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, errors.Wrap(err, msg)
		}
		return nil, err
	}
	return stdout.Bytes(), nil
}
