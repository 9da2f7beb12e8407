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
	"os"
	"path/filepath"
	"sort"
)

// EnvironmentWriter is a type used to write an environment to file filesystem.
type EnvironmentWriter struct{}

// Write creates the path directory, and creates a new file for each key with the value as the contents of each file.
// Keys may contain a single path separator (e.g. "web/JAVA_OPTS.append") in which case the intermediate directory is
// created. Values are written verbatim.
func (w EnvironmentWriter) Write(path string, environment map[string]string) error {
	if len(environment) == 0 {
		return nil
	}

	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("unable to mkdir %s\n%w", path, err)
	}

	keys := make([]string, 0, len(environment))
	for k := range environment {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		f := filepath.Join(path, key)

		if d := filepath.Dir(f); d != path {
			if err := os.MkdirAll(d, 0755); err != nil {
				return fmt.Errorf("unable to mkdir %s\n%w", d, err)
			}
		}

		// #nosec
		if err := os.WriteFile(f, []byte(environment[key]), 0644); err != nil {
			return fmt.Errorf("unable to write file %s\n%w", f, err)
		}
	}

	return nil
}
