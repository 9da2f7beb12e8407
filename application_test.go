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
	"testing"

	. "github.com/onsi/gomega"
	"github.com/sclevine/spec"

	"github.com/cnb-tools/libcnb"
)

func testLaunchMetadata(t *testing.T, context spec.G, it spec.S) {
	var (
		Expect = NewWithT(t).Expect

		launch libcnb.LaunchMetadata
	)

	it.Before(func() {
		launch = libcnb.LaunchMetadata{}
	})

	it("adds processes", func() {
		Expect(launch.AddProcess(libcnb.Process{Type: "web", Command: "java", Default: true})).To(Succeed())
		Expect(launch.AddProcess(libcnb.Process{Type: "task.v1", Command: "java", Arguments: []string{"-jar"}})).
			To(Succeed())

		Expect(launch.Processes).To(Equal([]libcnb.Process{
			{Type: "web", Command: "java", Default: true},
			{Type: "task.v1", Command: "java", Arguments: []string{"-jar"}},
		}))
	})

	it("rejects an invalid process type", func() {
		Expect(launch.AddProcess(libcnb.Process{Type: "web server", Command: "java"})).
			To(MatchError(ContainSubstring(`process type "web server" must match`)))
		Expect(launch.AddProcess(libcnb.Process{Command: "java"})).To(HaveOccurred())
		Expect(launch.Processes).To(BeEmpty())
	})

	it("rejects a duplicate process type", func() {
		Expect(launch.AddProcess(libcnb.Process{Type: "web", Command: "java"})).To(Succeed())

		Expect(launch.AddProcess(libcnb.Process{Type: "web", Command: "python"})).
			To(MatchError("process type web is declared more than once"))
		Expect(launch.Processes).To(HaveLen(1))
	})

	it("rejects a second default process", func() {
		Expect(launch.AddProcess(libcnb.Process{Type: "web", Command: "java", Default: true})).To(Succeed())

		Expect(launch.AddProcess(libcnb.Process{Type: "worker", Command: "java", Default: true})).
			To(MatchError("processes web and worker are both marked as default"))
		Expect(launch.Processes).To(HaveLen(1))
	})
}
