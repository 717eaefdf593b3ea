/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package tracer

import (
	"fmt"

	"dirpx.dev/flexerr/apis"
)

// None is the trace of the Noop strategy. It records nothing and renders as
// the empty string.
type None struct{}

// String returns "".
func (None) String() string { return "" }

// Noop is the zero-overhead strategy: both operations return None.
type Noop struct{}

var _ apis.Tracer[None] = Noop{}

// NewMessage returns None.
func (Noop) NewMessage(fmt.Stringer) None { return None{} }

// AddMessage returns trace unchanged.
func (Noop) AddMessage(trace None, _ fmt.Stringer) None { return trace }
