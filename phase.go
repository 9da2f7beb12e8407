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

	"github.com/Masterminds/semver"

	"github.com/cnb-tools/libcnb/internal"
)

const (
	EnvBuildpackDirectory = "CNB_BUILDPACK_DIR"
	EnvBuildPlanPath      = "CNB_BP_PLAN_PATH"
	EnvDetectPlanPath     = "CNB_BUILD_PLAN_PATH"
	EnvLayersDirectory    = "CNB_LAYERS_DIR"
	EnvPlatformDirectory  = "CNB_PLATFORM_DIR"
	EnvStackID            = "CNB_STACK_ID"
)

// phasePaths resolves the directories and files the lifecycle hands to a phase. Before buildpack API 0.8 they are the
// positional arguments after the command, afterwards they are read from the named environment variables.
func phasePaths(config Config, api *semver.Version, names ...string) ([]string, error) {
	if !usesEnvironmentVariables(api) {
		if len(config.arguments) != len(names)+1 {
			return nil, fmt.Errorf("expected %d arguments and received %d", len(names), len(config.arguments)-1)
		}

		return config.arguments[1:], nil
	}

	paths := make([]string, len(names))
	for i, name := range names {
		p, ok := os.LookupEnv(name)
		if !ok {
			return nil, fmt.Errorf("expected %s to be set", name)
		}
		paths[i] = p
	}

	return paths, nil
}

// readBuildpack resolves the buildpack directory, reads buildpack.toml, and checks its API version.
func readBuildpack(config Config, phase string) (Buildpack, *semver.Version, error) {
	path, err := buildpackPath(config.arguments[0], phase)
	if err != nil {
		return Buildpack{}, nil, err
	}
	logContents(config, "Buildpack contents", path)

	buildpack, err := NewBuildpackFromPath(path)
	if err != nil {
		return Buildpack{}, nil, fmt.Errorf("unable to read buildpack\n%w", err)
	}
	config.logger.Debugf("Buildpack: %+v", buildpack)

	api, err := buildpack.apiVersion()
	if err != nil {
		return Buildpack{}, nil, err
	}

	return buildpack, api, nil
}

// readPlatform reads the platform directory.
func readPlatform(config Config, path string) (Platform, error) {
	logContents(config, "Platform contents", path)

	platform, err := NewPlatformFromPath(path)
	if err != nil {
		return Platform{}, err
	}
	config.logger.Debugf("Platform Bindings: %s", platform.Bindings)
	config.logger.Debugf("Platform Environment: %s", platform.Environment)

	return platform, nil
}

func readStackID(config Config) (string, error) {
	s, ok := os.LookupEnv(EnvStackID)
	if !ok {
		return "", fmt.Errorf("expected %s to be set", EnvStackID)
	}
	config.logger.Debugf("Stack: %s", s)

	return s, nil
}

// logContents writes a listing of path to the debug log.
func logContents(config Config, title string, path string) {
	if !config.logger.IsDebugEnabled() {
		return
	}

	w := internal.NewDirectoryContentsWriter(config.contentFormatter, config.logger.DebugWriter())
	if err := w.Write(title, path); err != nil {
		config.logger.Debugf("unable to list %s\n%s", path, err)
	}
}

// recoverCallback turns a panic in a detect or build function into an error returned from the enclosing call.
func recoverCallback(phase string, err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%s panicked: %v", phase, r)
	}
}
