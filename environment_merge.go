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
	"strings"
)

// Contribution is a Modification made by a layer, together with the delimiter declared for the variable in the same
// env directory.
type Contribution struct {
	Modification

	// Layer is the name of the contributing layer.
	Layer string

	// Delimiter joins appended and prepended values.
	Delimiter string
}

// Apply returns the result of applying the contribution to the current value of its variable.
func (c Contribution) Apply(current string) string {
	switch c.Operation {
	case OperationOverride:
		return c.Value
	case OperationDefault:
		if current != "" {
			return current
		}
		return c.Value
	case OperationAppend:
		if current == "" {
			return c.Value
		}
		return current + c.Delimiter + c.Value
	case OperationPrepend:
		if current == "" {
			return c.Value
		}
		return c.Value + c.Delimiter + current
	case OperationDelete:
		if c.Value == "" {
			return current
		}
		return strings.ReplaceAll(current, c.Value, "")
	default:
		return current
	}
}

// MergeVariable folds the contributions for name, in order, over initial. Contributions for other variables are
// ignored.
func MergeVariable(name string, initial string, contributions []Contribution) string {
	value := initial
	for _, c := range contributions {
		if c.Name == name {
			value = c.Apply(value)
		}
	}

	return value
}

// Merge folds contributions, in order, over a copy of base. A delete of a variable that has no value yet is a no-op.
//
// Contributions from an Environment built in memory follow declaration order. An env directory read back with
// NewEnvironmentFromPath yields its operations in file-name order, the order the lifecycle applies them, so a
// variable declared with several operations can merge differently once persisted.
func Merge(base map[string]string, contributions []Contribution) map[string]string {
	merged := make(map[string]string, len(base))
	for k, v := range base {
		merged[k] = v
	}

	for _, c := range contributions {
		current, ok := merged[c.Name]
		if !ok && c.Operation == OperationDelete {
			continue
		}

		merged[c.Name] = c.Apply(current)
	}

	return merged
}

// Scope selects which env directories of a layer contribute to an environment.
type Scope struct {
	launch  bool
	process string
}

var (
	// BuildScope is the environment seen by subsequent buildpacks: env/ followed by env.build/ of build layers.
	BuildScope = Scope{}

	// LaunchScope is the environment of every launched process: env/ followed by env.launch/ of launch layers.
	LaunchScope = Scope{launch: true}
)

// ProcessScope is LaunchScope followed by the process-specific env.launch/<process>/ entries.
func ProcessScope(process string) Scope {
	return Scope{launch: true, process: process}
}

// Contributions returns the contributions of layers to the scope. Layers are traversed in the given order and only
// layers whose type matches the scope contribute. Within a layer the shared environment precedes the scope's own.
func Contributions(scope Scope, layers ...Layer) []Contribution {
	var contributions []Contribution

	for _, layer := range layers {
		if scope.launch && !layer.Launch || !scope.launch && !layer.Build {
			continue
		}

		contributions = append(contributions, contributionsFrom(layer.Name, layer.SharedEnvironment, "")...)

		if !scope.launch {
			contributions = append(contributions, contributionsFrom(layer.Name, layer.BuildEnvironment, "")...)
			continue
		}

		contributions = append(contributions, contributionsFrom(layer.Name, layer.LaunchEnvironment, "")...)
		if scope.process != "" {
			contributions = append(contributions, contributionsFrom(layer.Name, layer.LaunchEnvironment, scope.process)...)
		}
	}

	return contributions
}

// contributionsFrom returns the modifications of environment that belong to process, or the process-independent ones
// if process is empty. Process-specific names are returned without their process prefix.
func contributionsFrom(layer string, environment Environment, process string) []Contribution {
	var contributions []Contribution

	for _, m := range environment.Modifications {
		name := m.Name

		if i := strings.Index(name, "/"); i >= 0 {
			if name[:i] != process {
				continue
			}
			name = name[i+1:]
		} else if process != "" {
			continue
		}

		contributions = append(contributions, Contribution{
			Modification: Modification{Name: name, Operation: m.Operation, Value: m.Value},
			Layer:        layer,
			Delimiter:    environment.Delimiter(m.Name),
		})
	}

	return contributions
}
