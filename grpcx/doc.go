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

// Package grpcx carries reports over gRPC.
//
// Status converts a report into a *status.Status whose code comes from an
// apis.Mapper and whose details are standard google.rpc messages:
//
//   - errdetails.ErrorInfo: Reason is the report reason, Domain its family,
//     Metadata holds "code" and "variant";
//   - errdetails.DebugInfo: StackEntries is the trace, oldest first.
//
// The interceptors apply Status to classified errors returned by handlers;
// ExtractView reverses it on the client side.
package grpcx
