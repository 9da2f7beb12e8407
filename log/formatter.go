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

package log

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/heroku/color"
)

//go:generate mockery --name DirectoryContentFormatter --case=underscore

// DirectoryContentFormatter allows customization of logged directory output.
//
// When libcnb logs the contents of a directory, each item in the directory is passed through a
// DirectoryContentFormatter:
//   - RootPath(string) is called with the root path that's being walked
//   - Title(string) is called with the given title, the output is logged
//   - File(string, os.FileInfo) is called for each file in the directory, the output is logged
//
// A buildpack author can provide their own implementation through WithDirectoryContentFormatter when calling Detect or
// Build.
type DirectoryContentFormatter interface {
	// File takes the full path and os.FileInfo and returns a display string
	File(path string, info os.FileInfo) (string, error)

	// RootPath provides the root path being iterated
	RootPath(path string)

	// Title provides a plain string title which can be embellished
	Title(title string) string
}

// PlainDirectoryContentFormatter applies no formatting. Titles are followed by `:\n` and files are logged relative to
// the root followed by `\n`.
type PlainDirectoryContentFormatter struct {
	rootPath string
}

// NewPlainDirectoryContentFormatter returns a formatter that applies no formatting.
func NewPlainDirectoryContentFormatter() *PlainDirectoryContentFormatter {
	return &PlainDirectoryContentFormatter{}
}

func (p *PlainDirectoryContentFormatter) File(path string, _ os.FileInfo) (string, error) {
	rel, err := relative(p.rootPath, path)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s\n", rel), nil
}

func (p *PlainDirectoryContentFormatter) RootPath(path string) {
	p.rootPath = path
}

func (p *PlainDirectoryContentFormatter) Title(title string) string {
	return fmt.Sprintf("%s:\n", title)
}

// ColorDirectoryContentFormatter highlights titles, directories, and executables using ANSI colors. Output degrades to
// the plain format when color is disabled.
type ColorDirectoryContentFormatter struct {
	rootPath string

	directory  *color.Color
	executable *color.Color
	title      *color.Color
}

// NewColorDirectoryContentFormatter returns a formatter that colors its output.
func NewColorDirectoryContentFormatter() *ColorDirectoryContentFormatter {
	return &ColorDirectoryContentFormatter{
		directory:  color.New(color.FgBlue),
		executable: color.New(color.FgGreen),
		title:      color.New(color.FgCyan, color.Bold),
	}
}

func (c *ColorDirectoryContentFormatter) File(path string, info os.FileInfo) (string, error) {
	rel, err := relative(c.rootPath, path)
	if err != nil {
		return "", err
	}

	switch {
	case info.IsDir():
		rel = c.directory.Sprint(rel)
	case info.Mode()&0111 != 0:
		rel = c.executable.Sprint(rel)
	}

	return fmt.Sprintf("%s\n", rel), nil
}

func (c *ColorDirectoryContentFormatter) RootPath(path string) {
	c.rootPath = path
}

func (c *ColorDirectoryContentFormatter) Title(title string) string {
	return fmt.Sprintf("%s:\n", c.title.Sprint(title))
}

func relative(root string, path string) (string, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", fmt.Errorf("unable to calculate relative path %s -> %s\n%w", root, path, err)
	}

	return rel, nil
}
