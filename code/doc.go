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

// Package code provides the canonical codes that classify flexerr variants.
//
// A variant may declare a code such as "unavailable" or "not_found";
// transports map codes to HTTP and gRPC statuses. A canonical code is a
// lowercase letter followed by lowercase letters, digits and underscores,
// between MinLength and MaxLength bytes long.
//
// Undeclared codes are Empty and are treated as Internal by transports. The
// codes declared here are Known and carry a retry hint; any other canonical
// code is accepted but relies on explicit mapper rules.
package code
