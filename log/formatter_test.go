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

package log_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/heroku/color"
	. "github.com/onsi/gomega"
	"github.com/sclevine/spec"

	"github.com/cnb-tools/libcnb/log"
)

func testFormatter(t *testing.T, context spec.G, it spec.S) {
	var (
		Expect = NewWithT(t).Expect

		path string
	)

	it.Before(func() {
		path = t.TempDir()
		Expect(os.MkdirAll(filepath.Join(path, "bin"), 0755)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(path, "bin", "run"), []byte{}, 0755)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(path, "README"), []byte{}, 0644)).To(Succeed())
	})

	stat := func(name string) os.FileInfo {
		info, err := os.Stat(filepath.Join(path, name))
		Expect(err).NotTo(HaveOccurred())
		return info
	}

	context("plain", func() {
		var f *log.PlainDirectoryContentFormatter

		it.Before(func() {
			f = log.NewPlainDirectoryContentFormatter()
			f.RootPath(path)
		})

		it("formats title", func() {
			Expect(f.Title("foo")).To(Equal("foo:\n"))
		})

		it("formats a file relative to the root", func() {
			Expect(f.File(filepath.Join(path, "bin", "run"), stat("bin/run"))).To(Equal(fmt.Sprintf("%s\n", filepath.Join("bin", "run"))))
		})
	})

	context("color", func() {
		var f *log.ColorDirectoryContentFormatter

		it.Before(func() {
			f = log.NewColorDirectoryContentFormatter()
			f.RootPath(path)
		})

		it.After(func() {
			color.Disable(false)
		})

		context("when color is enabled", func() {
			it.Before(func() {
				color.Disable(false)
			})

			it("colors the title", func() {
				Expect(f.Title("foo")).To(ContainSubstring("\x1b["))
				Expect(f.Title("foo")).To(HaveSuffix(":\n"))
			})

			it("colors directories and executables", func() {
				Expect(f.File(filepath.Join(path, "bin"), stat("bin"))).To(ContainSubstring("\x1b["))
				Expect(f.File(filepath.Join(path, "bin", "run"), stat("bin/run"))).To(ContainSubstring("\x1b["))
			})

			it("does not color regular files", func() {
				Expect(f.File(filepath.Join(path, "README"), stat("README"))).To(Equal("README\n"))
			})
		})

		context("when color is disabled", func() {
			it.Before(func() {
				color.Disable(true)
			})

			it("matches the plain format", func() {
				Expect(f.Title("foo")).To(Equal("foo:\n"))
				Expect(f.File(filepath.Join(path, "bin"), stat("bin"))).To(Equal("bin\n"))
			})
		})
	})
}
