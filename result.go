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
	"strings"

	"github.com/cnb-tools/libcnb/internal"
)

func (b BuildResult) validate(plan BuildpackPlan) error {
	names := map[string]bool{}
	for _, layer := range b.Layers {
		if err := validateLayerName(layer.Name); err != nil {
			return err
		}

		if names[layer.Name] {
			return fmt.Errorf("layer %s is contributed more than once", layer.Name)
		}
		names[layer.Name] = true
	}

	if err := b.LaunchMetadata.validate(); err != nil {
		return err
	}

	return b.BuildMetadata.validate(plan)
}

// persist writes every listed layer, removes the metadata files of layers that are not listed, and then writes
// launch.toml, build.toml, and store.toml.
func (b BuildResult) persist(config Config, layersPath string) error {
	for _, layer := range b.Layers {
		if err := persistLayer(config, layersPath, layer); err != nil {
			return err
		}
	}

	if err := removeStaleLayers(config, layersPath, b.Layers); err != nil {
		return err
	}

	for _, f := range []struct {
		name  string
		empty bool
		value interface{}
	}{
		{"launch.toml", b.LaunchMetadata.isEmpty(), b.LaunchMetadata},
		{"build.toml", b.BuildMetadata.isEmpty(), b.BuildMetadata},
		{"store.toml", len(b.PersistentMetadata) == 0, Store{Metadata: b.PersistentMetadata}},
	} {
		if f.empty {
			continue
		}

		file := filepath.Join(layersPath, f.name)
		config.logger.Debugf("Writing %s <= %+v", file, f.value)
		if err := config.tomlWriter.Write(file, f.value); err != nil {
			return fmt.Errorf("unable to write %s\n%w", file, err)
		}
	}

	return nil
}

// persistLayer writes the environment and profile.d trees of a layer and then its metadata file.
func persistLayer(config Config, layersPath string, layer Layer) error {
	path := filepath.Join(layersPath, layer.Name)

	for _, d := range []struct {
		name  string
		files map[string]string
	}{
		{"env", layer.SharedEnvironment.Files()},
		{"env.build", layer.BuildEnvironment.Files()},
		{"env.launch", layer.LaunchEnvironment.Files()},
		{"profile.d", layer.Profile},
	} {
		file := filepath.Join(path, d.name)
		config.logger.Debugf("Writing layer %s: %s <= %+v", d.name, file, d.files)
		if err := config.environmentWriter.Write(file, d.files); err != nil {
			return internal.LayerIOError{Layer: layer.Name, Operation: "write", Path: file, Err: err}
		}
	}

	file := filepath.Join(layersPath, fmt.Sprintf("%s.toml", layer.Name))
	config.logger.Debugf("Writing layer metadata: %s <= %+v", file, layer)
	if err := config.tomlWriter.Write(file, layer); err != nil {
		return internal.LayerIOError{Layer: layer.Name, Operation: "write", Path: file, Err: err}
	}

	return nil
}

// removeStaleLayers removes <layers>/<name>.toml for every layer that is not part of the result so that the
// lifecycle does not export it. store.toml and the layer directories themselves are left in place.
func removeStaleLayers(config Config, layersPath string, layers []Layer) error {
	keep := map[string]bool{"store.toml": true}
	for _, layer := range layers {
		keep[fmt.Sprintf("%s.toml", layer.Name)] = true
	}

	files, err := filepath.Glob(filepath.Join(layersPath, "*.toml"))
	if err != nil {
		return fmt.Errorf("unable to list %s\n%w", layersPath, err)
	}

	for _, file := range files {
		name := filepath.Base(file)
		if keep[name] {
			continue
		}

		config.logger.Debugf("Removing %s", file)
		if err := os.Remove(file); err != nil {
			return internal.LayerIOError{Layer: strings.TrimSuffix(name, ".toml"), Operation: "remove", Path: file, Err: err}
		}
	}

	return nil
}
