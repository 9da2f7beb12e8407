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
	"regexp"
)

var processTypePattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// Label represents an image label.
type Label struct {
	// Key is the key of the label.
	Key string `toml:"key"`

	// Value is the value of the label.
	Value string `toml:"value"`
}

// Process represents metadata about a type of command that can be run.
type Process struct {
	// Type is the type of the process.
	Type string `toml:"type"`

	// Command is the command of the process.
	Command string `toml:"command"`

	// Arguments are arguments to the command.
	Arguments []string `toml:"args,omitempty"`

	// Direct indicates that the command is exec'd directly by the os (no profile.d scripts run).
	Direct bool `toml:"direct,omitempty"`

	// Default can be set to true to indicate that the process type being defined should be the default process type
	// for the app image.
	Default bool `toml:"default,omitempty"`
}

// Slice represents metadata about a slice.
type Slice struct {
	// Paths are the contents of the slice.
	Paths []string `toml:"paths"`
}

// BOMEntry contains a bill of materials entry.
type BOMEntry struct {
	// Name represents the name of the entry.
	Name string `toml:"name"`

	// Metadata is the metadata of the entry.  Optional.
	Metadata map[string]interface{} `toml:"metadata,omitempty"`
}

// LaunchMetadata represents the contents of launch.toml.
type LaunchMetadata struct {
	// Labels is the collection of image labels contributed by the buildpack.
	Labels []Label `toml:"labels,omitempty"`

	// Processes is the collection of process types contributed by the buildpack.
	Processes []Process `toml:"processes,omitempty"`

	// Slices is the collection of slices contributed by the buildpack.
	Slices []Slice `toml:"slices,omitempty"`

	// BOM is a collection of entries for the bill of materials.
	BOM []BOMEntry `toml:"bom,omitempty"`
}

// AddProcess adds a process, failing if its type is invalid, already present, or if it is a second default process.
func (l *LaunchMetadata) AddProcess(process Process) error {
	candidate := LaunchMetadata{Processes: append(append([]Process{}, l.Processes...), process)}
	if err := candidate.validate(); err != nil {
		return err
	}

	l.Processes = candidate.Processes
	return nil
}

func (l LaunchMetadata) isEmpty() bool {
	return len(l.Labels) == 0 && len(l.Processes) == 0 && len(l.Slices) == 0 && len(l.BOM) == 0
}

func (l LaunchMetadata) validate() error {
	types := map[string]bool{}
	var defaultType string

	for _, p := range l.Processes {
		if !processTypePattern.MatchString(p.Type) {
			return fmt.Errorf("process type %q must match %s", p.Type, processTypePattern)
		}

		if types[p.Type] {
			return fmt.Errorf("process type %s is declared more than once", p.Type)
		}
		types[p.Type] = true

		if p.Default {
			if defaultType != "" {
				return fmt.Errorf("processes %s and %s are both marked as default", defaultType, p.Type)
			}
			defaultType = p.Type
		}
	}

	return nil
}

// BuildMetadata represents the contents of build.toml.
type BuildMetadata struct {
	// BOM contains the build-time bill of materials.
	BOM []BOMEntry `toml:"bom,omitempty"`

	// Unmet is a collection of buildpack plan entries that should be passed through to subsequent providers.
	Unmet []UnmetPlanEntry `toml:"unmet,omitempty"`
}

func (b BuildMetadata) isEmpty() bool {
	return len(b.BOM) == 0 && len(b.Unmet) == 0
}

func (b BuildMetadata) validate(plan BuildpackPlan) error {
	names := map[string]bool{}
	for _, e := range plan.Entries {
		names[e.Name] = true
	}

	for _, u := range b.Unmet {
		if u.Name == "" {
			return fmt.Errorf("unmet plan entry name must not be empty")
		}

		if !names[u.Name] {
			return fmt.Errorf("unmet plan entry %s is not in the buildpack plan", u.Name)
		}
	}

	return nil
}

// Store represents the contents of store.toml
type Store struct {
	// Metadata represents the persistent metadata.
	Metadata map[string]interface{} `toml:"metadata,omitempty"`
}
