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

// Package adapter flattens errors and declarations into the portable view
// types of package apis.
package adapter

import (
	"errors"

	"dirpx.dev/errcode"
	"dirpx.dev/errcode/apis"
	"dirpx.dev/errcode/code"
)

// UnclassifiedCode is reported for errors that carry no code: E1012
// (Internal) at X00/Y00/Z00.
const UnclassifiedCode = uint32(1012) * code.Multiplier

// Describe converts a declaration together with its resolved transport
// statuses into a portable ErrorDescriptor. A nil mapper leaves the
// statuses zero.
func Describe(d code.Declaration, m apis.Mapper) apis.ErrorDescriptor {
	c := d.Code()
	desc := apis.ErrorDescriptor{
		Code:     c,
		Category: d.Category().Flag().Tagged(),
		Path:     d.Path().String(),
		Message:  d.Category().Message(),
	}
	return withStatus(desc, m)
}

// DescribeAll is Describe over a list of declarations, keeping their order.
func DescribeAll(decls []code.Declaration, m apis.Mapper) []apis.ErrorDescriptor {
	out := make([]apis.ErrorDescriptor, len(decls))
	for i, d := range decls {
		out[i] = Describe(d, m)
	}
	return out
}

// ToDescriptor converts a domain-level error together with its resolved
// transport status into a portable ErrorDescriptor.
//
// The descriptor is intended for structured logging, tracing, or message bus
// propagation. Category is empty when the code does not decode.
func ToDescriptor(e *errcode.Error, m apis.Mapper) apis.ErrorDescriptor {
	if e == nil {
		return apis.ErrorDescriptor{}
	}
	desc := apis.ErrorDescriptor{
		Code:    e.Code,
		Path:    e.Path,
		Message: e.Message,
	}
	if flag, err := e.Category(); err == nil {
		desc.Category = flag.Tagged()
	}
	return withStatus(desc, m)
}

func withStatus(desc apis.ErrorDescriptor, m apis.Mapper) apis.ErrorDescriptor {
	if m == nil {
		return desc
	}
	st := m.Status(desc.Code)
	desc.HTTPStatus = st.HTTP
	desc.GRPCCode = int(st.GRPC)
	return desc
}

// ToView converts any error into a public ErrorView. This function performs
// no automatic redaction or filtering of details.
//
// Resolution, first match wins:
//   - an apis.ViewProvider in the chain supplies its own view;
//   - an apis.CodedError supplies the code, err.Error() the message, and
//     apis.DetailedError the details;
//   - anything else becomes UnclassifiedCode with the Internal category
//     text, so internal messages do not leak.
//
// A nil error yields the zero view. A non-nil error holding a nil
// *errcode.Error carries no code and is unclassified.
func ToView(err error) apis.ErrorView {
	if err == nil {
		return apis.ErrorView{}
	}
	var vp apis.ViewProvider
	if errors.As(err, &vp) {
		if e, ok := vp.(*errcode.Error); ok && e == nil {
			return unclassified()
		}
		return vp.ErrorView()
	}
	var ce apis.CodedError
	if errors.As(err, &ce) {
		v := apis.ErrorView{Code: ce.ErrorCode(), Message: ce.Error()}
		// If the error provides structured details, propagate them directly.
		if de, ok := ce.(apis.DetailedError); ok {
			v.Details = de.ErrorDetails()
		}
		if pe, ok := ce.(apis.PathedError); ok {
			v.Path = pe.ErrorPath()
		}
		return v
	}
	return unclassified()
}

func unclassified() apis.ErrorView {
	return apis.ErrorView{Code: UnclassifiedCode, Message: code.Internal.Message()}
}
