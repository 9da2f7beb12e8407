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
	"errors"
	"fmt"
)

// Failure is an error that signals a detection failure rather than an error. Any Failure matches Fail when compared
// with errors.Is, regardless of message.
type Failure struct {
	err error
}

// Fail is the sentinel Failure.
var Fail = Failure{err: errors.New("failed")}

// WithMessage returns a Failure with a formatted message. The format supports the %w verb.
func (f Failure) WithMessage(format string, a ...interface{}) Failure {
	return Failure{err: fmt.Errorf(format, a...)}
}

func (f Failure) Error() string {
	if f.err == nil {
		return "failed"
	}

	return f.err.Error()
}

// Is reports whether target is a Failure.
func (f Failure) Is(target error) bool {
	_, ok := target.(Failure)
	return ok
}

func (f Failure) Unwrap() error {
	return errors.Unwrap(f.err)
}
