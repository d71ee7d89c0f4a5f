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

// Package terraform reads the JSON document produced by `terraform output -json`.
package terraform

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Output is a single named value exported by terraform.
type Output struct {
	Value     interface{} `json:"value"`
	Type      interface{} `json:"type,omitempty"`
	Sensitive bool        `json:"sensitive,omitempty"`
}

// Outputs maps output names to their values.
type Outputs map[string]Output

// Load reads and parses the outputs document at path.
// A missing file yields an error for which IsNotFound returns true.
func Load(path string) (Outputs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read terraform outputs %s", path)
	}

	var outputs Outputs
	if err := json.Unmarshal(data, &outputs); err != nil {
		return nil, errors.Wrapf(err, "failed to parse terraform outputs %s", path)
	}
	return outputs, nil
}

// ExecutableDir returns the directory of the running executable, with symlinks
// resolved so that a linked inventory program finds files next to its target.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", errors.Wrap(err, "failed to locate executable")
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", errors.Wrap(err, "failed to resolve executable path")
	}
	return filepath.Dir(exe), nil
}

// ResolvePath returns path unchanged when it is absolute and joined to dir otherwise.
func ResolvePath(path, dir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// IsNotFound returns true if err reports a missing outputs file.
func IsNotFound(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// Has returns true if the named output is present.
func (o Outputs) Has(name string) bool {
	_, ok := o[name]
	return ok
}

// String returns the value of a string output.
func (o Outputs) String(name string) (string, error) {
	out, ok := o[name]
	if !ok {
		return "", errors.Errorf("terraform output %q not found", name)
	}
	s, ok := out.Value.(string)
	if !ok {
		return "", errors.Errorf("terraform output %q is %T, not a string", name, out.Value)
	}
	return s, nil
}

// StringSlice returns the value of a list or tuple output whose elements are all strings.
func (o Outputs) StringSlice(name string) ([]string, error) {
	out, ok := o[name]
	if !ok {
		return nil, errors.Errorf("terraform output %q not found", name)
	}
	items, ok := out.Value.([]interface{})
	if !ok {
		return nil, errors.Errorf("terraform output %q is %T, not a list", name, out.Value)
	}

	values := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, errors.Errorf("terraform output %q element %d is %T, not a string", name, i, item)
		}
		values = append(values, s)
	}
	return values, nil
}

// StringAt returns the element at index of a list output. Only that element
// has to be a string.
func (o Outputs) StringAt(name string, index int) (string, error) {
	out, ok := o[name]
	if !ok {
		return "", errors.Errorf("terraform output %q not found", name)
	}
	items, ok := out.Value.([]interface{})
	if !ok {
		return "", errors.Errorf("terraform output %q is %T, not a list", name, out.Value)
	}
	if index < 0 || index >= len(items) {
		return "", errors.Errorf("terraform output %q has %d elements, index %d is out of range", name, len(items), index)
	}
	s, ok := items[index].(string)
	if !ok {
		return "", errors.Errorf("terraform output %q element %d is %T, not a string", name, index, items[index])
	}
	return s, nil
}
