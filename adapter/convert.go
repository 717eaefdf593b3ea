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

package adapter

import (
	"errors"

	"dirpx.dev/flexerr/apis"
	"dirpx.dev/flexerr/code"
	"dirpx.dev/flexerr/reason"
)

// ToView converts err into an ErrorView.
//
// Each part is looked up on its own, outermost first:
//
//   - family and variant from an apis.VariantError;
//   - code from an apis.CodedError;
//   - reason from an apis.ReasonedError;
//   - trace from an apis.TracedError.
//
// Reports implement all four, so a report supplies everything; a foreign
// error may contribute only a code. The message is always err.Error(). Codes
// that are empty or invalid become code.Internal. A nil error gives the zero
// view.
func ToView(err error) apis.ErrorView {
	if err == nil {
		return apis.ErrorView{}
	}
	v := apis.ErrorView{Message: err.Error()}

	var ve apis.VariantError
	if errors.As(err, &ve) {
		v.Family = ve.ErrorFamily()
		v.Variant = ve.ErrorVariant()
	}
	var ce apis.CodedError
	if errors.As(err, &ce) {
		v.Code = ce.ErrorCode()
	}
	var re apis.ReasonedError
	if errors.As(err, &re) {
		v.Reason = re.ErrorReason()
	}
	var te apis.TracedError
	if errors.As(err, &te) {
		v.Trace = te.TraceMessages()
	}

	if code.Validate(code.Code(v.Code)) != nil {
		v.Code = code.Internal.String()
	}
	if reason.Validate(reason.Reason(v.Reason)) != nil {
		v.Reason = ""
	}
	return v
}

// Classify returns the code and reason of err as ToView sees them.
func Classify(err error) (code.Code, reason.Reason) {
	v := ToView(err)
	return code.Code(v.Code), reason.Reason(v.Reason)
}

// Resolve maps err to transport statuses with m. A nil error resolves like
// an internal one; callers are expected to check for nil first.
func Resolve(m apis.Mapper, err error) apis.Status {
	c, r := Classify(err)
	return m.Status(c.OrInternal(), r)
}

// ToDescriptor combines the view of err with the statuses it resolved to.
// A nil error gives the zero descriptor.
func ToDescriptor(err error, st apis.Status) apis.ErrorDescriptor {
	if err == nil {
		return apis.ErrorDescriptor{}
	}
	v := ToView(err)
	return apis.ErrorDescriptor{
		Family:     v.Family,
		Variant:    v.Variant,
		Code:       v.Code,
		Reason:     v.Reason,
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
		Message:    v.Message,
		TraceDepth: len(v.Trace),
		Retryable:  code.Code(v.Code).Retryable(),
	}
}

// IsClassified reports whether the chain of err declares a family or a
// valid code. A report whose detail classifies nothing is not classified,
// and neither is a foreign error without a code.
func IsClassified(err error) bool {
	var ve apis.VariantError
	if errors.As(err, &ve) && ve.ErrorFamily() != "" {
		return true
	}
	var ce apis.CodedError
	return errors.As(err, &ce) && code.Validate(code.Code(ce.ErrorCode())) == nil
}
