/*
 * Copyright 2018-2020 the original author or authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      https://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package libcnb

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/cnb-tools/libcnb/internal"
)

const (
	// BindingKind is the metadata key for a binding's kind.
	BindingKind = "kind"

	// BindingProvider is the metadata key for a binding's provider.
	BindingProvider = "provider"

	// BindingType is the metadata key for a binding's type.
	BindingType = "type"
)

// Binding is a projection of metadata about an external entity to be bound to.
type Binding struct {
	// Name is the name of the binding
	Name string

	// Path is the path to the binding directory.
	Path string

	// Type is the type of the binding.
	Type string

	// Provider is the optional provider of the binding.
	Provider string

	// Secret is the secret of the binding.
	Secret map[string]string
}

// NewBinding creates a new Binding. The type, kind, and provider entries of secret are lifted into Type and Provider
// and removed from Secret.
func NewBinding(name string, path string, secret map[string]string) Binding {
	b := Binding{
		Name:   name,
		Path:   path,
		Secret: map[string]string{},
	}

	for k, v := range secret {
		switch k {
		case BindingType:
			b.Type = v
		case BindingKind:
			if b.Type == "" {
				b.Type = v
			}
		case BindingProvider:
			b.Provider = v
		default:
			b.Secret[k] = v
		}
	}

	return b
}

// NewBindingFromPath creates a new binding from the files located at a path.
func NewBindingFromPath(path string) (Binding, error) {
	secret, err := internal.NewConfigMapFromPath(path)
	if err != nil {
		return Binding{}, fmt.Errorf("unable to create new config map from %s\n%w", path, err)
	}

	return NewBinding(filepath.Base(path), path, secret), nil
}

func (b Binding) String() string {
	var s []string
	for k := range b.Secret {
		s = append(s, k)
	}
	sort.Strings(s)

	return fmt.Sprintf("{Name: %s Path: %s Type: %s Provider: %s Secret: %s}", b.Name, b.Path, b.Type, b.Provider, s)
}

// SecretFilePath return the path to a secret file with the given name.
func (b Binding) SecretFilePath(name string) (string, bool) {
	if _, ok := b.Secret[name]; !ok {
		return "", false
	}

	return filepath.Join(b.Path, name), true
}

// Bindings is a collection of bindings keyed by their name.
type Bindings []Binding

// NewBindings creates a new bindings from all the bindings at the path defined by $SERVICE_BINDING_ROOT, or
// <platform>/bindings if it is not set.
func NewBindings(platformDir string) (Bindings, error) {
	if path, ok := os.LookupEnv("SERVICE_BINDING_ROOT"); ok {
		return NewBindingsFromPath(path)
	}

	return NewBindingsFromPath(filepath.Join(platformDir, "bindings"))
}

// NewBindingsFromPath creates a new instance from all the bindings at a given path. A missing path yields an empty
// collection.
func NewBindingsFromPath(path string) (Bindings, error) {
	entries, err := os.ReadDir(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Bindings{}, nil
	} else if err != nil {
		return nil, fmt.Errorf("unable to list %s\n%w", path, err)
	}

	bindings := Bindings{}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		binding, err := NewBindingFromPath(filepath.Join(path, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("unable to create new binding from %s\n%w", filepath.Join(path, entry.Name()), err)
		}

		bindings = append(bindings, binding)
	}

	return bindings, nil
}

// Platform is the contents of the platform directory.
type Platform struct {
	// Bindings are the external bindings available to the application.
	Bindings Bindings

	// Environment is the environment exposed by the platform.
	Environment map[string]string

	// Path is the path to the platform.
	Path string
}

// NewPlatformFromPath reads the platform's environment from <path>/env and its bindings.
func NewPlatformFromPath(path string) (Platform, error) {
	p := Platform{Path: path}

	env, err := internal.NewConfigMapFromPath(filepath.Join(path, "env"))
	if err != nil {
		return Platform{}, fmt.Errorf("unable to read platform environment\n%w", err)
	}
	p.Environment = env

	if p.Bindings, err = NewBindings(path); err != nil {
		return Platform{}, fmt.Errorf("unable to read platform bindings\n%w", err)
	}

	return p, nil
}
