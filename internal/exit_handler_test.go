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

package internal_test

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/sclevine/spec"

	"github.com/cnb-tools/libcnb/internal"
)

func testExitHandler(t *testing.T, context spec.G, it spec.S) {
	var (
		Expect = NewWithT(t).Expect

		b        *bytes.Buffer
		exitCode int
		handler  internal.ExitHandler
	)

	it.Before(func() {
		b = bytes.NewBuffer([]byte{})
		exitCode = -1

		handler = internal.NewExitHandler(
			internal.WithExitHandlerExitFunc(func(c int) { exitCode = c }),
			internal.WithExitHandlerWriter(b),
		)
	})

	it("exits with code 0 when passing", func() {
		handler.Pass()
		Expect(exitCode).To(Equal(0))
	})

	it("exits with code 100 when failing", func() {
		handler.Fail()
		Expect(exitCode).To(Equal(100))
	})

	it("exits with code 1 when the error is non-nil", func() {
		handler.Error(errors.New("failed"))
		Expect(exitCode).To(Equal(1))
	})

	it("writes a plain error without a heading", func() {
		handler.Error(errors.New("test-message"))
		Expect(b.String()).To(Equal("test-message\n"))
	})

	context("error kinds", func() {
		it("names the phase of a callback error", func() {
			handler.Error(internal.CallbackError{Phase: "build", Err: errors.New("test-message")})

			Expect(b.String()).To(Equal("build function failed:\ntest-message\n"))
			Expect(exitCode).To(Equal(1))
		})

		it("names the layer and operation of a layer error", func() {
			handler.Error(internal.LayerIOError{
				Layer:     "jdk",
				Operation: "reset",
				Path:      "/layers/jdk",
				Err:       errors.New("test-message"),
			})

			Expect(b.String()).To(Equal("layer jdk failed to reset:\nunable to reset layer jdk at /layers/jdk\ntest-message\n"))
		})

		it("names the file of a malformed artifact", func() {
			handler.Error(fmt.Errorf("unable to read buildpack plan\n%w",
				internal.MalformedArtifactError{Path: "/plan.toml", Err: errors.New("test-message")}))

			Expect(b.String()).To(Equal(
				"/plan.toml could not be decoded:\nunable to read buildpack plan\nmalformed artifact /plan.toml\ntest-message\n"))
		})

		it("prefers the callback phase when a callback returns a layer error", func() {
			handler.Error(internal.CallbackError{
				Phase: "build",
				Err:   internal.LayerIOError{Layer: "jdk", Operation: "create", Path: "/layers/jdk", Err: errors.New("test-message")},
			})

			Expect(b.String()).To(HavePrefix("build function failed:\n"))
		})

		it("writes nothing when failing or passing", func() {
			handler.Fail()
			handler.Pass()
			Expect(b.String()).To(BeEmpty())
		})
	})
}
