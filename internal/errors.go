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

package internal

import (
	"fmt"
)

// MalformedArtifactError is returned when a TOML artifact exists but cannot be decoded into its expected shape.
type MalformedArtifactError struct {
	// Path is the location of the artifact.
	Path string

	// Err is the underlying decode or validation error.
	Err error
}

func (m MalformedArtifactError) Error() string {
	return fmt.Sprintf("malformed artifact %s\n%s", m.Path, m.Err)
}

func (m MalformedArtifactError) Unwrap() error {
	return m.Err
}

// LayerIOError is returned when a layer directory cannot be created, read, written, or cleared.
type LayerIOError struct {
	// Layer is the name of the layer.
	Layer string

	// Operation describes what was being attempted, e.g. "create" or "reset".
	Operation string

	// Path is the filesystem location involved.
	Path string

	// Err is the underlying filesystem error.
	Err error
}

func (l LayerIOError) Error() string {
	return fmt.Sprintf("unable to %s layer %s at %s\n%s", l.Operation, l.Layer, l.Path, l.Err)
}

func (l LayerIOError) Unwrap() error {
	return l.Err
}

// CallbackError carries an error returned by a buildpack's detect or build function. Its message is the message of
// the wrapped error.
type CallbackError struct {
	// Phase is either "detect" or "build".
	Phase string

	// Err is the error returned by the callback.
	Err error
}

func (c CallbackError) Error() string {
	return c.Err.Error()
}

func (c CallbackError) Unwrap() error {
	return c.Err
}
