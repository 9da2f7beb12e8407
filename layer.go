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
	"reflect"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/cnb-tools/libcnb/internal"
)

const (
	BOMFormatCycloneDXExtension = "cdx.json"
	BOMFormatSPDXExtension      = "spdx.json"
	BOMFormatSyftExtension      = "syft.json"
	BOMMediaTypeCycloneDX       = "application/vnd.cyclonedx+json"
	BOMMediaTypeSPDX            = "application/spdx+json"
	BOMMediaTypeSyft            = "application/vnd.syft+json"
	BOMUnknown                  = "unknown"
)

// Exec represents the exec.d layer location
type Exec struct {
	// Path is the path to the exec.d directory.
	Path string
}

// FilePath returns the fully qualified file path for a given name.
func (e Exec) FilePath(name string) string {
	return filepath.Join(e.Path, name)
}

// ProcessFilePath returns the fully qualified file path for a given name for the given process type.
func (e Exec) ProcessFilePath(processType string, name string) string {
	return filepath.Join(e.Path, processType, name)
}

// SBOMFormat indicates the format of the SBOM entry
type SBOMFormat int

const (
	CycloneDXJSON SBOMFormat = iota
	SPDXJSON
	SyftJSON
	UnknownFormat
)

// String returns the file extension of the format, or BOMUnknown for a format outside the known set.
func (b SBOMFormat) String() string {
	switch b {
	case CycloneDXJSON:
		return BOMFormatCycloneDXExtension
	case SPDXJSON:
		return BOMFormatSPDXExtension
	case SyftJSON:
		return BOMFormatSyftExtension
	default:
		return BOMUnknown
	}
}

// MediaType returns the media type of the format.
func (b SBOMFormat) MediaType() string {
	switch b {
	case CycloneDXJSON:
		return BOMMediaTypeCycloneDX
	case SPDXJSON:
		return BOMMediaTypeSPDX
	case SyftJSON:
		return BOMMediaTypeSyft
	default:
		return BOMUnknown
	}
}

// SBOMFormatFromString returns the SBOMFormat for a file extension.
func SBOMFormatFromString(from string) (SBOMFormat, error) {
	switch from {
	case CycloneDXJSON.String():
		return CycloneDXJSON, nil
	case SPDXJSON.String():
		return SPDXJSON, nil
	case SyftJSON.String():
		return SyftJSON, nil
	}

	return UnknownFormat, fmt.Errorf("unable to translate from %s to SBOMFormat", from)
}

// LayerTypes describes which types apply to a given layer. A layer may have any combination of Launch, Build, and
// Cache types.
type LayerTypes struct {
	// Build indicates that a layer should be used for builds.
	Build bool `toml:"build"`

	// Cache indicates that a layer should be cached.
	Cache bool `toml:"cache"`

	// Launch indicates that a layer should be used for launch.
	Launch bool `toml:"launch"`
}

// Layer represents a layer managed by the buildpack.
type Layer struct {
	// LayerTypes indicates the type of layer
	LayerTypes `toml:"types"`

	// Metadata is the metadata associated with the layer.
	Metadata map[string]interface{} `toml:"metadata,omitempty"`

	// Name is the name of the layer.
	Name string `toml:"-"`

	// Path is the filesystem location of the layer.
	Path string `toml:"-"`

	// BuildEnvironment are the environment variables set at build time.
	BuildEnvironment Environment `toml:"-"`

	// LaunchEnvironment are the environment variables set at launch time.
	LaunchEnvironment Environment `toml:"-"`

	// SharedEnvironment are the environment variables set at both build and launch times.
	SharedEnvironment Environment `toml:"-"`

	// Profile is the profile.d scripts set in the layer.
	Profile Profile `toml:"-"`

	// Exec is the exec.d executables set in the layer.
	Exec Exec `toml:"-"`
}

// CompareMetadata reports whether the layer's metadata matches expected. When exact is false only the keys present in
// expected are compared. Numbers compare by value regardless of their Go type, and nil and empty collections are
// equal.
func (l Layer) CompareMetadata(expected map[string]interface{}, exact bool) bool {
	if exact {
		return cmp.Equal(l.Metadata, expected, metadataOptions...)
	}

	for k, e := range expected {
		a, ok := l.Metadata[k]
		if !ok || !cmp.Equal(a, e, metadataOptions...) {
			return false
		}
	}

	return true
}

// Reset removes the contents of the layer directory and its metadata file, and clears the layer's metadata,
// environments, and profile. The directory itself and the layer's types are kept.
func (l Layer) Reset() (Layer, error) {
	l.Metadata = nil
	l.SharedEnvironment = Environment{}
	l.BuildEnvironment = Environment{}
	l.LaunchEnvironment = Environment{}
	l.Profile = Profile{}

	entries, err := os.ReadDir(l.Path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Layer{}, internal.LayerIOError{Layer: l.Name, Operation: "reset", Path: l.Path, Err: err}
	}

	for _, entry := range entries {
		f := filepath.Join(l.Path, entry.Name())
		if err := os.RemoveAll(f); err != nil {
			return Layer{}, internal.LayerIOError{Layer: l.Name, Operation: "reset", Path: f, Err: err}
		}
	}

	if err := os.Remove(l.metadataFile()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Layer{}, internal.LayerIOError{Layer: l.Name, Operation: "reset", Path: l.metadataFile(), Err: err}
	}

	if err := ensureDirectory(l.Path); err != nil {
		return Layer{}, internal.LayerIOError{Layer: l.Name, Operation: "reset", Path: l.Path, Err: err}
	}

	return l, nil
}

// SBOMPath returns the path to the layer specific SBOM File
func (l Layer) SBOMPath(bt SBOMFormat) string {
	return filepath.Join(filepath.Dir(l.Path), fmt.Sprintf("%s.sbom.%s", l.Name, bt))
}

func (l Layer) metadataFile() string {
	return filepath.Join(filepath.Dir(l.Path), fmt.Sprintf("%s.toml", l.Name))
}

// Layers is the layers directory the lifecycle hands to a build.
type Layers struct {
	// Path is the layers filesystem location.
	Path string
}

// Layer returns the named layer, creating its directory if it does not exist. Only the layer's types and metadata are
// loaded from <layers>/<name>.toml.
func (l Layers) Layer(name string) (Layer, error) {
	return l.layer(name, false)
}

// LayerWithContents returns the named layer like Layer and additionally loads its env, env.build, env.launch, and
// profile.d directories.
func (l Layers) LayerWithContents(name string) (Layer, error) {
	return l.layer(name, true)
}

// BuildSBOMPath returns the full path to the build SBoM file for the buildpack
func (l Layers) BuildSBOMPath(bt SBOMFormat) string {
	return filepath.Join(l.Path, fmt.Sprintf("build.sbom.%s", bt))
}

// LaunchSBOMPath returns the full path to the launch SBoM file for the buildpack
func (l Layers) LaunchSBOMPath(bt SBOMFormat) string {
	return filepath.Join(l.Path, fmt.Sprintf("launch.sbom.%s", bt))
}

func (l Layers) layer(name string, contents bool) (Layer, error) {
	if err := validateLayerName(name); err != nil {
		return Layer{}, err
	}

	layer := Layer{
		Name:    name,
		Path:    filepath.Join(l.Path, name),
		Profile: Profile{},
		Exec:    Exec{Path: filepath.Join(l.Path, name, "exec.d")},
	}

	if err := ensureDirectory(layer.Path); err != nil {
		return Layer{}, internal.LayerIOError{Layer: name, Operation: "create", Path: layer.Path, Err: err}
	}

	var file internal.LayerMetadataFile
	if _, err := (internal.TOMLReader{}).Read(layer.metadataFile(), &file); err != nil {
		return Layer{}, err
	}
	layer.Build, layer.Cache, layer.Launch = file.Flags()
	layer.Metadata = file.Metadata

	if !contents {
		return layer, nil
	}

	var err error
	for d, e := range map[string]*Environment{
		"env":        &layer.SharedEnvironment,
		"env.build":  &layer.BuildEnvironment,
		"env.launch": &layer.LaunchEnvironment,
	} {
		if *e, err = NewEnvironmentFromPath(filepath.Join(layer.Path, d)); err != nil {
			return Layer{}, internal.LayerIOError{Layer: name, Operation: "load", Path: filepath.Join(layer.Path, d), Err: err}
		}
	}

	if layer.Profile, err = NewProfileFromPath(filepath.Join(layer.Path, "profile.d")); err != nil {
		return Layer{}, internal.LayerIOError{Layer: name, Operation: "load", Path: filepath.Join(layer.Path, "profile.d"), Err: err}
	}

	return layer, nil
}

func validateLayerName(name string) error {
	if name == "" {
		return fmt.Errorf("layer name must not be empty")
	}

	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("layer name %q must not contain a path separator", name)
	}

	if name == "store" || name == "launch" || name == "build" {
		return fmt.Errorf("layer name %q is reserved", name)
	}

	return nil
}

// ensureDirectory creates path if it does not exist and verifies that it is a directory the process can list, enter,
// and write.
func ensureDirectory(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return err
	}

	if info, err := os.Stat(path); err != nil {
		return err
	} else if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", path)
	}

	return checkAccess(path)
}

var metadataOptions = []cmp.Option{
	cmpopts.EquateEmpty(),
	cmp.Exporter(func(reflect.Type) bool { return true }),
	cmp.FilterValues(func(x, y interface{}) bool {
		_, xOk := number(x)
		_, yOk := number(y)
		return xOk && yOk
	}, cmp.Comparer(func(x, y interface{}) bool {
		a, _ := number(x)
		b, _ := number(y)
		return a == b
	})),
}

func number(v interface{}) (float64, bool) {
	r := reflect.ValueOf(v)

	switch r.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(r.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(r.Uint()), true
	case reflect.Float32, reflect.Float64:
		return r.Float(), true
	default:
		return 0, false
	}
}
