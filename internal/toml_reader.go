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
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

// TOMLReader is a type used to read TOML files from the filesystem.
type TOMLReader struct{}

// Read decodes the file at path into value. A missing file is not an error: value is left untouched and false is
// returned. A file that exists but does not decode into value returns a MalformedArtifactError.
func (TOMLReader) Read(path string, value interface{}) (bool, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	} else if err != nil {
		return false, fmt.Errorf("unable to read file %s\n%w", path, err)
	}

	if _, err := toml.Decode(string(b), value); err != nil {
		return false, MalformedArtifactError{Path: path, Err: err}
	}

	return true, nil
}
