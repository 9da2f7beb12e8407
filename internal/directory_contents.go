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
	"io"
	"os"
	"path/filepath"

	"github.com/cnb-tools/libcnb/log"
)

// DirectoryContentsWriter logs the contents of a directory tree through a log.DirectoryContentFormatter.
type DirectoryContentsWriter struct {
	format log.DirectoryContentFormatter
	writer io.Writer
}

// NewDirectoryContentsWriter returns a DirectoryContentsWriter that writes formatted output to writer.
func NewDirectoryContentsWriter(format log.DirectoryContentFormatter, writer io.Writer) DirectoryContentsWriter {
	return DirectoryContentsWriter{
		format: format,
		writer: writer,
	}
}

// Write logs the title followed by every entry below path, in lexical order, including path itself.
func (d DirectoryContentsWriter) Write(title, path string) error {
	d.format.RootPath(path)

	if _, err := fmt.Fprint(d.writer, d.format.Title(title)); err != nil {
		return fmt.Errorf("unable to write title\n%w", err)
	}

	if err := filepath.Walk(path, func(file string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		s, err := d.format.File(file, info)
		if err != nil {
			return err
		}

		if _, err := fmt.Fprint(d.writer, s); err != nil {
			return fmt.Errorf("unable to write %s\n%w", file, err)
		}

		return nil
	}); err != nil {
		return fmt.Errorf("error walking path %s\n%w", path, err)
	}

	return nil
}
