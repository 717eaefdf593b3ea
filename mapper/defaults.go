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

package mapper

import (
	"net/http"

	"google.golang.org/grpc/codes"

	"dirpx.dev/flexerr/apis"
	"dirpx.dev/flexerr/code"
)

// defaults is the built-in table. It stays close to REST and gRPC
// conventions; callers adjust it per code with the With*Default options.
var defaults = map[code.Code]apis.Status{
	code.Internal:    {HTTP: http.StatusInternalServerError, GRPC: codes.Internal},
	code.Invalid:     {HTTP: http.StatusBadRequest, GRPC: codes.InvalidArgument},
	code.Missing:     {HTTP: http.StatusBadRequest, GRPC: codes.InvalidArgument},
	code.Unsupported: {HTTP: http.StatusBadRequest, GRPC: codes.Unimplemented},

	code.Unavailable: {HTTP: http.StatusServiceUnavailable, GRPC: codes.Unavailable},
	code.Timeout:     {HTTP: http.StatusGatewayTimeout, GRPC: codes.DeadlineExceeded},
	// 499 would be closer for canceled, but it is not a registered status.
	code.Canceled:          {HTTP: http.StatusRequestTimeout, GRPC: codes.Canceled},
	code.DependencyFailed:  {HTTP: http.StatusBadGateway, GRPC: codes.FailedPrecondition},
	code.ResourceExhausted: {HTTP: http.StatusInsufficientStorage, GRPC: codes.ResourceExhausted},

	code.NotFound:           {HTTP: http.StatusNotFound, GRPC: codes.NotFound},
	code.AlreadyExists:      {HTTP: http.StatusConflict, GRPC: codes.AlreadyExists},
	code.Conflict:           {HTTP: http.StatusConflict, GRPC: codes.Aborted},
	code.PreconditionFailed: {HTTP: http.StatusPreconditionFailed, GRPC: codes.FailedPrecondition},

	code.Unauthenticated:  {HTTP: http.StatusUnauthorized, GRPC: codes.Unauthenticated},
	code.PermissionDenied: {HTTP: http.StatusForbidden, GRPC: codes.PermissionDenied},

	code.RateLimited: {HTTP: http.StatusTooManyRequests, GRPC: codes.ResourceExhausted},
}
