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

// LayerMetadataFile is the on-disk shape of <layers>/<layer>.toml. It accepts both the current format, where the flags
// live in a [types] table, and the pre-0.6 format, where they are top-level keys.
type LayerMetadataFile struct {
	Types *LayerTypesTable `toml:"types"`

	Build  bool `toml:"build"`
	Cache  bool `toml:"cache"`
	Launch bool `toml:"launch"`

	Metadata map[string]interface{} `toml:"metadata"`
}

// LayerTypesTable is the [types] table of a layer metadata file.
type LayerTypesTable struct {
	Build  bool `toml:"build"`
	Cache  bool `toml:"cache"`
	Launch bool `toml:"launch"`
}

// Flags returns the build, cache, and launch flags, preferring the [types] table when present.
func (l LayerMetadataFile) Flags() (build bool, cache bool, launch bool) {
	if l.Types != nil {
		return l.Types.Build, l.Types.Cache, l.Types.Launch
	}

	return l.Build, l.Cache, l.Launch
}
