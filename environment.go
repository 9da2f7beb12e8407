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
	"strings"
)

// Operation is the kind of modification applied to an environment variable. Each operation corresponds to the file
// suffix the lifecycle recognizes in an env directory.
type Operation string

const (
	// OperationAppend appends the value to the current value, separated by the variable's delimiter.
	OperationAppend Operation = "append"

	// OperationDefault sets the value only if the variable has no value yet.
	OperationDefault Operation = "default"

	// OperationDelete removes every occurrence of the value from the current value.
	OperationDelete Operation = "delete"

	// OperationOverride replaces the current value.
	OperationOverride Operation = "override"

	// OperationPrepend prepends the value to the current value, separated by the variable's delimiter.
	OperationPrepend Operation = "prepend"
)

// DefaultDelimiter separates appended and prepended values when a variable has no declared delimiter.
const DefaultDelimiter = "\n"

// Modification is a single declared change to an environment variable.
type Modification struct {
	// Name is the variable name. Process-specific modifications are prefixed by the process type, e.g. "web/JAVA_OPTS".
	Name string

	// Operation is the kind of change.
	Operation Operation

	// Value is the operand of the change.
	Value string
}

// Environment represents the file-based environment variable declarations of one env directory. Modifications are
// kept in the order they were declared and are applied in that order. Declaring the same operation for the same
// variable again replaces the earlier value in place since the on-disk form holds one file per variable and
// operation.
type Environment struct {
	// Modifications are the declared changes, in order.
	Modifications []Modification

	// Delimiters are the declared delimiters keyed by variable name.
	Delimiters map[string]string
}

// NewEnvironmentFromPath reads an env directory. Files in the directory and in process-specific subdirectories are
// read in file name order. Files without a recognized suffix are ignored. A missing directory yields an empty
// Environment.
func NewEnvironmentFromPath(path string) (Environment, error) {
	e := Environment{}

	entries, err := os.ReadDir(path)
	if errors.Is(err, fs.ErrNotExist) {
		return e, nil
	} else if err != nil {
		return Environment{}, fmt.Errorf("unable to list %s\n%w", path, err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			if err := e.readFile(path, entry.Name()); err != nil {
				return Environment{}, err
			}
			continue
		}

		process := entry.Name()
		children, err := os.ReadDir(filepath.Join(path, process))
		if err != nil {
			return Environment{}, fmt.Errorf("unable to list %s\n%w", filepath.Join(path, process), err)
		}

		for _, child := range children {
			if child.IsDir() {
				continue
			}

			if err := e.readFile(path, filepath.Join(process, child.Name())); err != nil {
				return Environment{}, err
			}
		}
	}

	return e, nil
}

// Append formats using the default formats for its operands and appends the value of this environment variable to any
// previous declarations of the value, separated by delimiter. Spaces are added between operands when neither is a
// string.
func (e *Environment) Append(name string, delimiter string, a ...interface{}) {
	e.delimiter(name, delimiter)
	e.set(name, OperationAppend, fmt.Sprint(a...))
}

// Appendf formats according to a format specifier and appends the value of this environment variable to any previous
// declarations of the value, separated by delimiter.
func (e *Environment) Appendf(name string, delimiter string, format string, a ...interface{}) {
	e.delimiter(name, delimiter)
	e.set(name, OperationAppend, fmt.Sprintf(format, a...))
}

// Default formats using the default formats for its operands and sets a default for an environment variable with this
// value. Spaces are added between operands when neither is a string.
func (e *Environment) Default(name string, a ...interface{}) {
	e.set(name, OperationDefault, fmt.Sprint(a...))
}

// Defaultf formats according to a format specifier and sets a default for an environment variable with this value.
func (e *Environment) Defaultf(name string, format string, a ...interface{}) {
	e.set(name, OperationDefault, fmt.Sprintf(format, a...))
}

// Delete formats using the default formats for its operands and removes every occurrence of the value from the
// environment variable.
func (e *Environment) Delete(name string, a ...interface{}) {
	e.set(name, OperationDelete, fmt.Sprint(a...))
}

// Deletef formats according to a format specifier and removes every occurrence of the value from the environment
// variable.
func (e *Environment) Deletef(name string, format string, a ...interface{}) {
	e.set(name, OperationDelete, fmt.Sprintf(format, a...))
}

// Override formats using the default formats for its operands and overrides any existing value for an environment
// variable with this value. Spaces are added between operands when neither is a string.
func (e *Environment) Override(name string, a ...interface{}) {
	e.set(name, OperationOverride, fmt.Sprint(a...))
}

// Overridef formats according to a format specifier and overrides any existing value for an environment variable with
// this value.
func (e *Environment) Overridef(name string, format string, a ...interface{}) {
	e.set(name, OperationOverride, fmt.Sprintf(format, a...))
}

// Prepend formats using the default formats for its operands and prepends the value of this environment variable to
// any previous declarations of the value, separated by delimiter. Spaces are added between operands when neither is a
// string.
func (e *Environment) Prepend(name string, delimiter string, a ...interface{}) {
	e.delimiter(name, delimiter)
	e.set(name, OperationPrepend, fmt.Sprint(a...))
}

// Prependf formats according to a format specifier and prepends the value of this environment variable to any
// previous declarations of the value, separated by delimiter.
func (e *Environment) Prependf(name string, delimiter string, format string, a ...interface{}) {
	e.delimiter(name, delimiter)
	e.set(name, OperationPrepend, fmt.Sprintf(format, a...))
}

// ProcessAppend formats using the default formats for its operands and appends the value of this environment variable
// to any previous declarations of the value for the given process type.
func (e *Environment) ProcessAppend(processType string, name string, delimiter string, a ...interface{}) {
	e.Append(processName(processType, name), delimiter, a...)
}

// ProcessAppendf formats according to a format specifier and appends the value of this environment variable to any
// previous declarations of the value for the given process type.
func (e *Environment) ProcessAppendf(processType string, name string, delimiter string, format string, a ...interface{}) {
	e.Appendf(processName(processType, name), delimiter, format, a...)
}

// ProcessDefault formats using the default formats for its operands and sets a default for an environment variable
// with this value for the given process type.
func (e *Environment) ProcessDefault(processType string, name string, a ...interface{}) {
	e.Default(processName(processType, name), a...)
}

// ProcessDefaultf formats according to a format specifier and sets a default for an environment variable with this
// value for the given process type.
func (e *Environment) ProcessDefaultf(processType string, name string, format string, a ...interface{}) {
	e.Defaultf(processName(processType, name), format, a...)
}

// ProcessDelete removes every occurrence of the value from the environment variable for the given process type.
func (e *Environment) ProcessDelete(processType string, name string, a ...interface{}) {
	e.Delete(processName(processType, name), a...)
}

// ProcessOverride formats using the default formats for its operands and overrides any existing value for an
// environment variable with this value for the given process type.
func (e *Environment) ProcessOverride(processType string, name string, a ...interface{}) {
	e.Override(processName(processType, name), a...)
}

// ProcessOverridef formats according to a format specifier and overrides any existing value for an environment
// variable with this value for the given process type.
func (e *Environment) ProcessOverridef(processType string, name string, format string, a ...interface{}) {
	e.Overridef(processName(processType, name), format, a...)
}

// ProcessPrepend formats using the default formats for its operands and prepends the value of this environment
// variable to any previous declarations of the value for the given process type.
func (e *Environment) ProcessPrepend(processType string, name string, delimiter string, a ...interface{}) {
	e.Prepend(processName(processType, name), delimiter, a...)
}

// ProcessPrependf formats according to a format specifier and prepends the value of this environment variable to any
// previous declarations of the value for the given process type.
func (e *Environment) ProcessPrependf(processType string, name string, delimiter string, format string, a ...interface{}) {
	e.Prependf(processName(processType, name), delimiter, format, a...)
}

// Lookup returns the value declared for a variable and operation.
func (e Environment) Lookup(name string, operation Operation) (string, bool) {
	for _, m := range e.Modifications {
		if m.Name == name && m.Operation == operation {
			return m.Value, true
		}
	}

	return "", false
}

// Delimiter returns the delimiter used to join values of a variable.
func (e Environment) Delimiter(name string) string {
	if d, ok := e.Delimiters[name]; ok {
		return d
	}

	return DefaultDelimiter
}

// IsEmpty indicates whether the Environment declares nothing.
func (e Environment) IsEmpty() bool {
	return len(e.Modifications) == 0 && len(e.Delimiters) == 0
}

// Files returns the on-disk projection of the Environment, keyed by file name relative to the env directory.
func (e Environment) Files() map[string]string {
	files := make(map[string]string, len(e.Modifications)+len(e.Delimiters))

	for _, m := range e.Modifications {
		files[fmt.Sprintf("%s.%s", m.Name, m.Operation)] = m.Value
	}

	for name, delimiter := range e.Delimiters {
		files[fmt.Sprintf("%s.delim", name)] = delimiter
	}

	return files
}

func (e *Environment) set(name string, operation Operation, value string) {
	for i, m := range e.Modifications {
		if m.Name == name && m.Operation == operation {
			e.Modifications[i].Value = value
			return
		}
	}

	e.Modifications = append(e.Modifications, Modification{Name: name, Operation: operation, Value: value})
}

func (e *Environment) delimiter(name string, delimiter string) {
	if e.Delimiters == nil {
		e.Delimiters = map[string]string{}
	}

	e.Delimiters[name] = delimiter
}

func (e *Environment) readFile(root string, rel string) error {
	i := strings.LastIndex(rel, ".")
	if i <= 0 {
		return nil
	}

	name, suffix := filepath.ToSlash(rel[:i]), rel[i+1:]

	var operation Operation
	switch suffix {
	case "delim":
	case string(OperationAppend), string(OperationDefault), string(OperationDelete), string(OperationOverride),
		string(OperationPrepend):
		operation = Operation(suffix)
	default:
		return nil
	}

	b, err := os.ReadFile(filepath.Join(root, rel))
	if err != nil {
		return fmt.Errorf("unable to read file %s\n%w", filepath.Join(root, rel), err)
	}

	if operation == "" {
		e.delimiter(name, string(b))
	} else {
		e.set(name, operation, string(b))
	}

	return nil
}

func processName(processType string, name string) string {
	return fmt.Sprintf("%s/%s", processType, name)
}
