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

	"github.com/cnb-tools/libcnb/internal"
	"github.com/cnb-tools/libcnb/log"
)

// BuildContext contains the inputs to build.
type BuildContext struct {

	// ApplicationPath is the location of the application source code as provided by
	// the lifecycle.
	ApplicationPath string

	// Buildpack is metadata about the buildpack, from buildpack.toml.
	Buildpack Buildpack

	// Layers is the layers available to the buildpack.
	Layers Layers

	// Logger is the way to write messages to the end user
	Logger log.Logger

	// PersistentMetadata is metadata that is persisted even across cache cleaning.
	PersistentMetadata map[string]interface{}

	// Plan is the buildpack plan provided to the buildpack.
	Plan BuildpackPlan

	// Platform is the contents of the platform.
	Platform Platform

	// StackID is the ID of the stack.
	StackID string
}

// BuildResult contains the results of build.
type BuildResult struct {

	// Layers is the collection of layers contributed by the buildpack. Only these layers are exported.
	Layers []Layer

	// LaunchMetadata is the contents of launch.toml.
	LaunchMetadata LaunchMetadata

	// BuildMetadata is the contents of build.toml.
	BuildMetadata BuildMetadata

	// PersistentMetadata is metadata that is persisted even across cache cleaning.
	PersistentMetadata map[string]interface{}
}

// NewBuildResult returns an empty BuildResult.
func NewBuildResult() BuildResult {
	return BuildResult{
		PersistentMetadata: map[string]interface{}{},
	}
}

// BuildFunc takes a context and returns a result, performing buildpack build behaviors.
type BuildFunc func(context BuildContext) (BuildResult, error)

// Build is called by the main function of a buildpack, for build.
func Build(build BuildFunc, options ...Option) {
	runBuild(build, NewConfig(options...))
}

func runBuild(build BuildFunc, config Config) {
	var err error

	if len(config.arguments) == 0 {
		config.exitHandler.Error(fmt.Errorf("expected command name"))
		return
	}

	ctx := BuildContext{Logger: config.logger}

	ctx.ApplicationPath, err = os.Getwd()
	if err != nil {
		config.exitHandler.Error(fmt.Errorf("unable to get working directory\n%w", err))
		return
	}
	logContents(config, "Application contents", ctx.ApplicationPath)

	buildpack, api, err := readBuildpack(config, "build")
	if err != nil {
		config.exitHandler.Error(err)
		return
	}
	ctx.Buildpack = buildpack

	paths, err := phasePaths(config, api, EnvLayersDirectory, EnvPlatformDirectory, EnvBuildPlanPath)
	if err != nil {
		config.exitHandler.Error(err)
		return
	}
	layersPath, platformPath, planPath := paths[0], paths[1], paths[2]

	ctx.Layers = Layers{Path: layersPath}
	config.logger.Debugf("Layers: %+v", ctx.Layers)

	if ctx.Platform, err = readPlatform(config, platformPath); err != nil {
		config.exitHandler.Error(err)
		return
	}

	var store Store
	if _, err = (internal.TOMLReader{}).Read(filepath.Join(layersPath, "store.toml"), &store); err != nil {
		config.exitHandler.Error(fmt.Errorf("unable to read persistent metadata\n%w", err))
		return
	}
	ctx.PersistentMetadata = store.Metadata
	config.logger.Debugf("Persistent Metadata: %+v", ctx.PersistentMetadata)

	if _, err = (internal.TOMLReader{}).Read(planPath, &ctx.Plan); err != nil {
		config.exitHandler.Error(fmt.Errorf("unable to read buildpack plan\n%w", err))
		return
	}
	if err = ctx.Plan.validate(); err != nil {
		config.exitHandler.Error(fmt.Errorf("unable to read buildpack plan\n%w",
			internal.MalformedArtifactError{Path: planPath, Err: err}))
		return
	}
	config.logger.Debugf("Buildpack Plan: %+v", ctx.Plan)

	if ctx.StackID, err = readStackID(config); err != nil {
		config.exitHandler.Error(err)
		return
	}

	result, err := callBuild(build, ctx)
	if err != nil {
		config.exitHandler.Error(internal.CallbackError{Phase: "build", Err: err})
		return
	}
	config.logger.Debugf("Result: %+v", result)

	if err := result.validate(ctx.Plan); err != nil {
		config.exitHandler.Error(fmt.Errorf("invalid build result\n%w", err))
		return
	}

	if err := result.persist(config, layersPath); err != nil {
		config.exitHandler.Error(err)
		return
	}

	config.exitHandler.Pass()
}

func callBuild(build BuildFunc, ctx BuildContext) (result BuildResult, err error) {
	defer recoverCallback("build", &err)
	return build(ctx)
}
