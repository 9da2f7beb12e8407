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
	"os"

	"github.com/cnb-tools/libcnb/internal"
	"github.com/cnb-tools/libcnb/log"
)

// DetectContext contains the inputs to detection.
type DetectContext struct {

	// ApplicationPath is the location of the application source code as provided by
	// the lifecycle.
	ApplicationPath string

	// Buildpack is metadata about the buildpack, from buildpack.toml.
	Buildpack Buildpack

	// Logger is the way to write messages to the end user
	Logger log.Logger

	// Platform is the contents of the platform.
	Platform Platform

	// StackID is the ID of the stack.
	StackID string
}

// DetectResult contains the results of detection.
type DetectResult struct {

	// Pass indicates whether detection has passed.
	Pass bool

	// Plans are the build plans contributed by the buildpack.
	Plans []BuildPlan
}

// NewDetectResult returns a DetectResult that does not pass and has no plans.
func NewDetectResult() DetectResult {
	return DetectResult{Plans: []BuildPlan{}}
}

// DetectFunc takes a context and returns a result, performing buildpack detect behaviors.
type DetectFunc func(context DetectContext) (DetectResult, error)

// Detect is called by the main function of a buildpack, for detection.
func Detect(detect DetectFunc, options ...Option) {
	runDetect(detect, NewConfig(options...))
}

func runDetect(detect DetectFunc, config Config) {
	var err error

	if len(config.arguments) == 0 {
		config.exitHandler.Error(fmt.Errorf("expected command name"))
		return
	}

	ctx := DetectContext{Logger: config.logger}

	ctx.ApplicationPath, err = os.Getwd()
	if err != nil {
		config.exitHandler.Error(fmt.Errorf("unable to get working directory\n%w", err))
		return
	}
	logContents(config, "Application contents", ctx.ApplicationPath)

	buildpack, api, err := readBuildpack(config, "detect")
	if err != nil {
		config.exitHandler.Error(err)
		return
	}
	ctx.Buildpack = buildpack

	paths, err := phasePaths(config, api, EnvPlatformDirectory, EnvDetectPlanPath)
	if err != nil {
		config.exitHandler.Error(err)
		return
	}
	platformPath, buildPlanPath := paths[0], paths[1]

	if ctx.Platform, err = readPlatform(config, platformPath); err != nil {
		config.exitHandler.Error(err)
		return
	}

	if ctx.StackID, err = readStackID(config); err != nil {
		config.exitHandler.Error(err)
		return
	}

	result, err := callDetect(detect, ctx)
	if errors.Is(err, internal.Fail) {
		if err.Error() != internal.Fail.Error() {
			config.logger.Info(err)
		}
		config.exitHandler.Fail()
		return
	} else if err != nil {
		config.exitHandler.Error(internal.CallbackError{Phase: "detect", Err: err})
		return
	}
	config.logger.Debugf("Result: %+v", result)

	if !result.Pass {
		config.exitHandler.Fail()
		return
	}

	if len(result.Plans) > 0 {
		plans := NewBuildPlans(result.Plans)
		if err := plans.validate(); err != nil {
			config.exitHandler.Error(fmt.Errorf("invalid build plans\n%w", err))
			return
		}

		config.logger.Debugf("Writing build plans: %s <= %+v", buildPlanPath, plans)
		if err := config.tomlWriter.Write(buildPlanPath, plans); err != nil {
			config.exitHandler.Error(fmt.Errorf("unable to write build plans %s\n%w", buildPlanPath, err))
			return
		}
	}

	config.exitHandler.Pass()
}

func callDetect(detect DetectFunc, ctx DetectContext) (result DetectResult, err error) {
	defer recoverCallback("detect", &err)
	return detect(ctx)
}
