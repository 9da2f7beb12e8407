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

	"github.com/BurntSushi/toml"
	"github.com/google/go-cmp/cmp"
	"github.com/onsi/gomega/types"
)

// MatchTOML is a gomega matcher that compares two TOML documents, given as string or []byte, by decoded value.
func MatchTOML(expected interface{}) types.GomegaMatcher {
	return &matchTOML{
		expected: expected,
	}
}

type matchTOML struct {
	expected interface{}
	diff     string
}

func (matcher *matchTOML) Match(actual interface{}) (bool, error) {
	e, err := decodeTOML("expected", matcher.expected)
	if err != nil {
		return false, err
	}

	a, err := decodeTOML("actual", actual)
	if err != nil {
		return false, err
	}

	matcher.diff = cmp.Diff(e, a)
	return matcher.diff == "", nil
}

func (matcher *matchTOML) FailureMessage(actual interface{}) string {
	return fmt.Sprintf("Expected\n%s\nto match the TOML representation of\n%s\n(-expected +actual)\n%s",
		actual, matcher.expected, matcher.diff)
}

func (matcher *matchTOML) NegatedFailureMessage(actual interface{}) string {
	return fmt.Sprintf("Expected\n%s\nnot to match the TOML representation of\n%s", actual, matcher.expected)
}

func decodeTOML(kind string, value interface{}) (map[string]interface{}, error) {
	var s string

	switch v := value.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	case fmt.Stringer:
		s = v.String()
	default:
		return nil, fmt.Errorf("%s value must be []byte, string, or fmt.Stringer, received %T", kind, value)
	}

	m := map[string]interface{}{}
	if _, err := toml.Decode(s, &m); err != nil {
		return nil, fmt.Errorf("unable to decode %s value\n%w", kind, err)
	}

	return m, nil
}
