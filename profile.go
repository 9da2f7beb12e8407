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
)

// Profile is the collection of values to be written into profile.d, keyed by file name. Process-specific scripts are
// keyed by "<process>/<name>".
type Profile map[string]string

// NewProfileFromPath reads a profile.d directory and its process-specific subdirectories. Script contents are read
// verbatim. A missing directory yields an empty Profile.
func NewProfileFromPath(path string) (Profile, error) {
	profile := Profile{}

	entries, err := os.ReadDir(path)
	if errors.Is(err, fs.ErrNotExist) {
		return profile, nil
	} else if err != nil {
		return nil, fmt.Errorf("unable to list %s\n%w", path, err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			if err := profile.readFile(path, entry.Name()); err != nil {
				return nil, err
			}
			continue
		}

		children, err := os.ReadDir(filepath.Join(path, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("unable to list %s\n%w", filepath.Join(path, entry.Name()), err)
		}

		for _, child := range children {
			if !child.IsDir() {
				if err := profile.readFile(path, processName(entry.Name(), child.Name())); err != nil {
					return nil, err
				}
			}
		}
	}

	return profile, nil
}

// Add formats using the default formats for its operands and adds an entry for a .profile.d file. Spaces are added
// between operands when neither is a string.
func (p Profile) Add(name string, a ...interface{}) {
	p[name] = fmt.Sprint(a...)
}

// Addf formats according to a format specifier and adds an entry for a .profile.d file.
func (p Profile) Addf(name string, format string, a ...interface{}) {
	p[name] = fmt.Sprintf(format, a...)
}

// ProcessAdd formats using the default formats for its operands and adds an entry for a .profile.d file for the given
// process type.
func (p Profile) ProcessAdd(processType string, name string, a ...interface{}) {
	p.Add(processName(processType, name), a...)
}

// ProcessAddf formats according to a format specifier and adds an entry for a .profile.d file for the given process
// type.
func (p Profile) ProcessAddf(processType string, name string, format string, a ...interface{}) {
	p.Addf(processName(processType, name), format, a...)
}

func (p Profile) readFile(root string, name string) error {
	file := filepath.Join(root, name)

	b, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("unable to read file %s\n%w", file, err)
	}

	p[name] = string(b)
	return nil
}
