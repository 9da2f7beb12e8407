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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver"

	"github.com/cnb-tools/libcnb/internal"
)

const (
	// MinSupportedBPVersion is the lowest buildpack API this library supports.
	MinSupportedBPVersion = "0.6"

	// MaxSupportedBPVersion is the highest buildpack API this library supports.
	MaxSupportedBPVersion = "0.9"

	// EnvironmentVariablesBPVersion is the buildpack API from which the lifecycle passes paths through environment
	// variables rather than arguments.
	EnvironmentVariablesBPVersion = "0.8"
)

// BuildpackInfo is information about the buildpack.
type BuildpackInfo struct {
	// ID is the ID of the buildpack.
	ID string `toml:"id"`

	// Name is the name of the buildpack.
	Name string `toml:"name"`

	// Version is the version of the buildpack.
	Version string `toml:"version"`

	// Homepage is the homepage of the buildpack.
	Homepage string `toml:"homepage"`

	// ClearEnvironment is whether the environment should be clear of user-configured environment variables.
	ClearEnvironment bool `toml:"clear-env"`

	// Description is a string describing the buildpack.
	Description string `toml:"description"`

	// Keywords is a list of words that are associated with the buildpack.
	Keywords []string `toml:"keywords"`

	// Licenses a list of buildpack licenses.
	Licenses []License `toml:"licenses"`
}

// License contains information about a Software License governing the use or redistribution of a buildpack.
type License struct {
	// Type is the identifier for the license. It MAY use the SPDX 2.1 license expression, but is not limited to
	// identifiers in the SPDX Licenses List.
	Type string `toml:"type"`

	// URI may be specified in lieu of or in addition to type to point to the license if this buildpack is using a
	// nonstandard license.
	URI string `toml:"uri"`
}

// BuildpackOrderBuildpack is a buildpack within in a buildpack order group.
type BuildpackOrderBuildpack struct {
	// ID is the id of the buildpack.
	ID string `toml:"id"`

	// Version is the version of the buildpack.
	Version string `toml:"version"`

	// Optional is whether the buildpack is optional within the buildpack.
	Optional bool `toml:"optional"`
}

// BuildpackOrder is an order definition in the buildpack.
type BuildpackOrder struct {
	// Groups is the collection of groups within the order.
	Groups []BuildpackOrderBuildpack `toml:"group"`
}

// BuildpackStack is a stack supported by the buildpack.
type BuildpackStack struct {
	// ID is the id of the stack.
	ID string `toml:"id"`

	// Mixins is the collection of mixins associated with the stack.
	Mixins []string `toml:"mixins"`
}

// Buildpack is the contents of the buildpack.toml file.
type Buildpack struct {
	// API is the api version expected by the buildpack.
	API string `toml:"api"`

	// Info is information about the buildpack.
	Info BuildpackInfo `toml:"buildpack"`

	// Path is the path to the buildpack.
	Path string `toml:"-"`

	// Stacks is the collection of stacks supported by the buildpack.
	Stacks []BuildpackStack `toml:"stacks"`

	// Metadata is arbitrary metadata attached to the buildpack.
	Metadata map[string]interface{} `toml:"metadata"`

	// Order is the collection of buildpack order definitions in the buildpack.
	Order []BuildpackOrder `toml:"order"`
}

// NewBuildpackFromPath reads <path>/buildpack.toml. A missing file yields a Buildpack with only Path set.
func NewBuildpackFromPath(path string) (Buildpack, error) {
	b := Buildpack{Path: path}

	if _, err := (internal.TOMLReader{}).Read(filepath.Join(path, "buildpack.toml"), &b); err != nil {
		return Buildpack{}, err
	}

	return b, nil
}

// apiVersion parses the buildpack's API and verifies that it is within the supported range.
func (b Buildpack) apiVersion() (*semver.Version, error) {
	v, err := semver.NewVersion(b.API)
	if err != nil {
		return nil, fmt.Errorf("unable to parse buildpack API version %q\n%w", b.API, err)
	}

	c, err := semver.NewConstraint(fmt.Sprintf(">= %s, <= %s", MinSupportedBPVersion, MaxSupportedBPVersion))
	if err != nil {
		return nil, fmt.Errorf("unable to parse buildpack API constraint\n%w", err)
	}

	if !c.Check(v) {
		return nil, fmt.Errorf("this version of libcnb is only compatible with buildpack APIs >= %s, <= %s",
			MinSupportedBPVersion, MaxSupportedBPVersion)
	}

	return v, nil
}

// usesEnvironmentVariables reports whether the lifecycle passes paths for this API through environment variables.
func usesEnvironmentVariables(api *semver.Version) bool {
	return !api.LessThan(semver.MustParse(EnvironmentVariablesBPVersion))
}

// buildpackPath returns $CNB_BUILDPACK_DIR, or the directory containing bin/<command> otherwise.
func buildpackPath(command string, phase string) (string, error) {
	if path, ok := os.LookupEnv("CNB_BUILDPACK_DIR"); ok {
		return filepath.Clean(path), nil
	}

	suffix := filepath.Join("bin", phase)
	if !strings.HasSuffix(command, suffix) {
		return "", fmt.Errorf("unable to determine buildpack directory from %s: CNB_BUILDPACK_DIR is not set", command)
	}

	path, err := filepath.Abs(strings.TrimSuffix(command, suffix))
	if err != nil {
		return "", fmt.Errorf("unable to resolve buildpack directory from %s\n%w", command, err)
	}

	return path, nil
}
