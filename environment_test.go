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

package libcnb_test

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/sclevine/spec"

	"github.com/cnb-tools/libcnb"
	"github.com/cnb-tools/libcnb/internal"
)

func testEnvironment(t *testing.T, context spec.G, it spec.S) {
	var (
		Expect = NewWithT(t).Expect

		environment libcnb.Environment
	)

	it.Before(func() {
		environment = libcnb.Environment{}
	})

	it("adds append value", func() {
		environment.Append("TEST_NAME", "test-delimiter", "test-value")
		Expect(environment.Files()).To(Equal(map[string]string{
			"TEST_NAME.delim":  "test-delimiter",
			"TEST_NAME.append": "test-value",
		}))
	})

	it("adds append formatted value", func() {
		environment.Appendf("TEST_NAME", "test-delimiter", "test-%s", "value")
		Expect(environment.Files()).To(Equal(map[string]string{
			"TEST_NAME.delim":  "test-delimiter",
			"TEST_NAME.append": "test-value",
		}))
	})

	it("records an empty delimiter", func() {
		environment.Append("TEST_NAME", "", "test-value")
		Expect(environment.Files()).To(Equal(map[string]string{
			"TEST_NAME.delim":  "",
			"TEST_NAME.append": "test-value",
		}))
		Expect(environment.Delimiter("TEST_NAME")).To(Equal(""))
	})

	it("adds default value", func() {
		environment.Default("TEST_NAME", "test-value")
		Expect(environment.Files()).To(Equal(map[string]string{"TEST_NAME.default": "test-value"}))
	})

	it("adds default formatted value", func() {
		environment.Defaultf("TEST_NAME", "test-%s", "value")
		Expect(environment.Files()).To(Equal(map[string]string{"TEST_NAME.default": "test-value"}))
	})

	it("adds delete value", func() {
		environment.Delete("TEST_NAME", "test-value")
		Expect(environment.Files()).To(Equal(map[string]string{"TEST_NAME.delete": "test-value"}))
	})

	it("adds delete formatted value", func() {
		environment.Deletef("TEST_NAME", "test-%s", "value")
		Expect(environment.Files()).To(Equal(map[string]string{"TEST_NAME.delete": "test-value"}))
	})

	it("adds override value", func() {
		environment.Override("TEST_NAME", "test-value")
		Expect(environment.Files()).To(Equal(map[string]string{"TEST_NAME.override": "test-value"}))
	})

	it("adds override formatted value", func() {
		environment.Overridef("TEST_NAME", "test-%s", "value")
		Expect(environment.Files()).To(Equal(map[string]string{"TEST_NAME.override": "test-value"}))
	})

	it("adds prepend value", func() {
		environment.Prepend("TEST_NAME", "test-delimiter", "test-value")
		Expect(environment.Files()).To(Equal(map[string]string{
			"TEST_NAME.delim":   "test-delimiter",
			"TEST_NAME.prepend": "test-value",
		}))
	})

	it("adds prepend formatted value", func() {
		environment.Prependf("TEST_NAME", "test-delimiter", "test-%s", "value")
		Expect(environment.Files()).To(Equal(map[string]string{
			"TEST_NAME.delim":   "test-delimiter",
			"TEST_NAME.prepend": "test-value",
		}))
	})

	it("adds process-specific append value", func() {
		environment.ProcessAppend("test-process", "TEST_NAME", "test-delimiter", "test-value")
		Expect(environment.Files()).To(Equal(map[string]string{
			"test-process/TEST_NAME.delim":  "test-delimiter",
			"test-process/TEST_NAME.append": "test-value",
		}))
	})

	it("adds process-specific append formatted value", func() {
		environment.ProcessAppendf("test-process", "TEST_NAME", "test-delimiter", "test-%s", "value")
		Expect(environment.Files()).To(Equal(map[string]string{
			"test-process/TEST_NAME.delim":  "test-delimiter",
			"test-process/TEST_NAME.append": "test-value",
		}))
	})

	it("adds process-specific default value", func() {
		environment.ProcessDefault("test-process", "TEST_NAME", "test-value")
		Expect(environment.Files()).To(Equal(map[string]string{"test-process/TEST_NAME.default": "test-value"}))
	})

	it("adds process-specific default formatted value", func() {
		environment.ProcessDefaultf("test-process", "TEST_NAME", "test-%s", "value")
		Expect(environment.Files()).To(Equal(map[string]string{"test-process/TEST_NAME.default": "test-value"}))
	})

	it("adds process-specific delete value", func() {
		environment.ProcessDelete("test-process", "TEST_NAME", "test-value")
		Expect(environment.Files()).To(Equal(map[string]string{"test-process/TEST_NAME.delete": "test-value"}))
	})

	it("adds process-specific override value", func() {
		environment.ProcessOverride("test-process", "TEST_NAME", "test-value")
		Expect(environment.Files()).To(Equal(map[string]string{"test-process/TEST_NAME.override": "test-value"}))
	})

	it("adds process-specific override formatted value", func() {
		environment.ProcessOverridef("test-process", "TEST_NAME", "test-%s", "value")
		Expect(environment.Files()).To(Equal(map[string]string{"test-process/TEST_NAME.override": "test-value"}))
	})

	it("adds process-specific prepend value", func() {
		environment.ProcessPrepend("test-process", "TEST_NAME", "test-delimiter", "test-value")
		Expect(environment.Files()).To(Equal(map[string]string{
			"test-process/TEST_NAME.delim":   "test-delimiter",
			"test-process/TEST_NAME.prepend": "test-value",
		}))
	})

	it("adds process-specific prepend formatted value", func() {
		environment.ProcessPrependf("test-process", "TEST_NAME", "test-delimiter", "test-%s", "value")
		Expect(environment.Files()).To(Equal(map[string]string{
			"test-process/TEST_NAME.delim":   "test-delimiter",
			"test-process/TEST_NAME.prepend": "test-value",
		}))
	})

	it("keeps modifications in declaration order", func() {
		environment.Override("B", "1")
		environment.Append("A", ":", "2")
		environment.Default("B", "3")

		Expect(environment.Modifications).To(Equal([]libcnb.Modification{
			{Name: "B", Operation: libcnb.OperationOverride, Value: "1"},
			{Name: "A", Operation: libcnb.OperationAppend, Value: "2"},
			{Name: "B", Operation: libcnb.OperationDefault, Value: "3"},
		}))
	})

	it("replaces a repeated operation in place", func() {
		environment.Append("PATH", ":", "/first")
		environment.Override("JAVA_HOME", "/jdk")
		environment.Append("PATH", ":", "/second")

		Expect(environment.Modifications).To(Equal([]libcnb.Modification{
			{Name: "PATH", Operation: libcnb.OperationAppend, Value: "/second"},
			{Name: "JAVA_HOME", Operation: libcnb.OperationOverride, Value: "/jdk"},
		}))
	})

	it("looks up values", func() {
		environment.Override("TEST_NAME", "test-value")

		value, ok := environment.Lookup("TEST_NAME", libcnb.OperationOverride)
		Expect(ok).To(BeTrue())
		Expect(value).To(Equal("test-value"))

		_, ok = environment.Lookup("TEST_NAME", libcnb.OperationAppend)
		Expect(ok).To(BeFalse())
	})

	it("returns the default delimiter", func() {
		Expect(environment.Delimiter("TEST_NAME")).To(Equal(libcnb.DefaultDelimiter))
	})

	it("reports emptiness", func() {
		Expect(environment.IsEmpty()).To(BeTrue())

		environment.Default("TEST_NAME", "test-value")
		Expect(environment.IsEmpty()).To(BeFalse())
	})

	context("NewEnvironmentFromPath", func() {
		var path string

		it.Before(func() {
			path = filepath.Join(t.TempDir(), "env")
		})

		it("returns an empty environment when the directory does not exist", func() {
			e, err := libcnb.NewEnvironmentFromPath(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(e.IsEmpty()).To(BeTrue())
		})

		it("reads files in name order", func() {
			Expect(os.MkdirAll(filepath.Join(path, "web"), 0755)).To(Succeed())
			Expect(os.WriteFile(filepath.Join(path, "PATH.append"), []byte("/bin"), 0600)).To(Succeed())
			Expect(os.WriteFile(filepath.Join(path, "PATH.delim"), []byte(":"), 0600)).To(Succeed())
			Expect(os.WriteFile(filepath.Join(path, "JAVA_OPTS.override"), []byte("-Xmx1g\n"), 0600)).To(Succeed())
			Expect(os.WriteFile(filepath.Join(path, "README"), []byte("ignored"), 0600)).To(Succeed())
			Expect(os.WriteFile(filepath.Join(path, "TEST.unknown"), []byte("ignored"), 0600)).To(Succeed())
			Expect(os.WriteFile(filepath.Join(path, "web", "PORT.default"), []byte("8080"), 0600)).To(Succeed())

			e, err := libcnb.NewEnvironmentFromPath(path)
			Expect(err).NotTo(HaveOccurred())

			Expect(e.Modifications).To(Equal([]libcnb.Modification{
				{Name: "JAVA_OPTS", Operation: libcnb.OperationOverride, Value: "-Xmx1g\n"},
				{Name: "PATH", Operation: libcnb.OperationAppend, Value: "/bin"},
				{Name: "web/PORT", Operation: libcnb.OperationDefault, Value: "8080"},
			}))
			Expect(e.Delimiters).To(Equal(map[string]string{"PATH": ":"}))
		})

		it("round-trips through the environment writer", func() {
			environment.Append("PATH", ":", "/layers/test/bin")
			environment.Prepend("LD_LIBRARY_PATH", "", "/layers/test/lib")
			environment.Default("LANG", "C.UTF-8")
			environment.Delete("JAVA_OPTS", "-Xdebug")
			environment.ProcessOverride("web", "PORT", "8080")

			Expect(internal.EnvironmentWriter{}.Write(path, environment.Files())).To(Succeed())

			e, err := libcnb.NewEnvironmentFromPath(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(e.Files()).To(Equal(environment.Files()))
			Expect(e.Modifications).To(ConsistOf(environment.Modifications))
		})

		it("re-reads several operations on one variable in file-name order", func() {
			environment.Override("P", "b")
			environment.Prepend("P", ":", "a")
			environment.Append("P", ":", "c")

			Expect(internal.EnvironmentWriter{}.Write(path, environment.Files())).To(Succeed())

			e, err := libcnb.NewEnvironmentFromPath(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(e.Modifications).To(Equal([]libcnb.Modification{
				{Name: "P", Operation: libcnb.OperationAppend, Value: "c"},
				{Name: "P", Operation: libcnb.OperationOverride, Value: "b"},
				{Name: "P", Operation: libcnb.OperationPrepend, Value: "a"},
			}))

			layer := libcnb.Layer{Name: "test", LayerTypes: libcnb.LayerTypes{Build: true}}

			layer.SharedEnvironment = environment
			Expect(libcnb.MergeVariable("P", "", libcnb.Contributions(libcnb.BuildScope, layer))).To(Equal("a:b:c"))

			layer.SharedEnvironment = e
			Expect(libcnb.MergeVariable("P", "", libcnb.Contributions(libcnb.BuildScope, layer))).To(Equal("a:b"))
		})
	})
}
