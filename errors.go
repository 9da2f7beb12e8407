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
	"github.com/cnb-tools/libcnb/internal"
)

// MalformedArtifactError is returned when a TOML artifact such as buildpack.toml, the buildpack plan, store.toml, or a
// layer metadata file exists but cannot be decoded.
type MalformedArtifactError = internal.MalformedArtifactError

// LayerIOError is returned when a layer directory cannot be created, read, written, or reset.
type LayerIOError = internal.LayerIOError

// CallbackError wraps an error returned by a DetectFunc or BuildFunc. Its message is the message of the returned
// error.
type CallbackError = internal.CallbackError

// Fail is returned by a DetectFunc to report that detection did not pass. Use Fail.WithMessage to attach a
// formatted reason, eg: libcnb.Fail.WithMessage("no %s found", "go.mod"). The reason is logged and the phase exits
// with status 100.
var Fail = internal.Fail
