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

//go:generate mockery --name EnvironmentWriter --case=underscore

// EnvironmentWriter is the interface implemented by a type that wants to serialize a map of environment variables to
// the file system.
type EnvironmentWriter interface {

	// Write is called with the path to a directory where the environment variables should be serialized to and the
	// environment variables to serialize to that directory.
	Write(dir string, environment map[string]string) error
}

//go:generate mockery --name ExitHandler --case=underscore

// ExitHandler is the interface implemented by a type that wants to handle exit behavior when a buildpack encounters
// an error.
type ExitHandler interface {

	// Error is called when an error is encountered.
	Error(error)

	// Fail is called when a buildpack fails.
	Fail()

	// Pass is called when a buildpack passes.
	Pass()
}

//go:generate mockery --name TOMLWriter --case=underscore

// TOMLWriter is the interface implemented by a type that wants to serialize an object to a TOML file.
type TOMLWriter interface {

	// Write is called with the path that a TOML file should be written to and the object to serialize to that file.
	Write(path string, value interface{}) error
}

// Config is an object that contains configurable properties for execution.
type Config struct {
	arguments         []string
	contentFormatter  log.DirectoryContentFormatter
	environmentWriter EnvironmentWriter
	exitHandler       ExitHandler
	logger            log.Logger
	tomlWriter        TOMLWriter
}

// Option is a function for configuring a Config instance.
type Option func(config Config) Config

// WithArguments creates an Option that sets a collection of arguments.
func WithArguments(arguments []string) Option {
	return func(config Config) Config {
		config.arguments = arguments
		return config
	}
}

// WithDirectoryContentFormatter creates an Option that sets a DirectoryContentFormatter implementation.
func WithDirectoryContentFormatter(formatter log.DirectoryContentFormatter) Option {
	return func(config Config) Config {
		config.contentFormatter = formatter
		return config
	}
}

// WithEnvironmentWriter creates an Option that sets an EnvironmentWriter implementation.
func WithEnvironmentWriter(environmentWriter EnvironmentWriter) Option {
	return func(config Config) Config {
		config.environmentWriter = environmentWriter
		return config
	}
}

// WithExitHandler creates an Option that sets an ExitHandler implementation.
func WithExitHandler(exitHandler ExitHandler) Option {
	return func(config Config) Config {
		config.exitHandler = exitHandler
		return config
	}
}

// WithLogger creates an Option that sets a log.Logger implementation.
func WithLogger(logger log.Logger) Option {
	return func(config Config) Config {
		config.logger = logger
		return config
	}
}

// WithTOMLWriter creates an Option that sets a TOMLWriter implementation.
func WithTOMLWriter(tomlWriter TOMLWriter) Option {
	return func(config Config) Config {
		config.tomlWriter = tomlWriter
		return config
	}
}

// NewConfig creates a Config from the process arguments and the default writers, exit handler, and logger, and then
// applies options.
func NewConfig(options ...Option) Config {
	config := Config{
		arguments:         os.Args,
		contentFormatter:  log.NewPlainDirectoryContentFormatter(),
		environmentWriter: internal.EnvironmentWriter{},
		exitHandler:       internal.NewExitHandler(),
		logger:            log.New(os.Stdout),
		tomlWriter:        internal.TOMLWriter{},
	}

	for _, option := range options {
		config = option(config)
	}

	return config
}

// Main is called by the main function of a buildpack, encapsulating both detection and build in the same binary. The
// phase is selected by the base name of the first argument.
func Main(detect DetectFunc, build BuildFunc, options ...Option) {
	config := NewConfig(options...)

	if len(config.arguments) == 0 {
		config.exitHandler.Error(fmt.Errorf("expected command name"))
		return
	}

	switch c := filepath.Base(config.arguments[0]); c {
	case "build":
		runBuild(build, config)
	case "detect":
		runDetect(detect, config)
	default:
		config.exitHandler.Error(fmt.Errorf("unsupported command %s", c))
	}
}
