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

// Package demo holds a pair of generated error families used to exercise
// flexerr end to end. FooError absorbs a foreign ExternalError; QuuxError
// absorbs FooError reports and extends their trace.
package demo

//go:generate go run dirpx.dev/flexerr/cmd/flexgen -in errors.yaml -out errors_gen.go
