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

// Package grpcx converts errcode errors into gRPC statuses and back.
//
// Server side, the interceptors replace any error carrying a code with a
// status whose gRPC code comes from an apis.Mapper and whose details hold an
// errdetails.ErrorInfo:
//
//	reason:   "E1004"
//	domain:   "errcode.dirpx.dev"
//	metadata: {code: "1004000103", category: "E1004", path: "X00(shop)/Y01(accounts)/Z03(users)"}
//
// Client side, ExtractInfo, CodeFromError and FromError read it back.
package grpcx

import (
	"context"
	"errors"
	"strconv"
	"time"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"
	"google.golang.org/protobuf/types/known/durationpb"

	"dirpx.dev/errcode"
	"dirpx.dev/errcode/adapter"
	"dirpx.dev/errcode/apis"
	"dirpx.dev/errcode/code"
	"dirpx.dev/errcode/mapper"
)

// Domain is the ErrorInfo domain of statuses produced by this package.
const Domain = "errcode.dirpx.dev"

// ErrorInfo metadata keys.
const (
	MetaCode     = "code"
	MetaCategory = "category"
	MetaPath     = "path"
)

// FieldViolation describes one invalid request field.
type FieldViolation struct {
	Field       string
	Description string
}

// Link is a human-facing link to docs or support.
type Link struct {
	Description string
	URL         string
}

// Extras holds optional metadata attached as standard error details.
// All fields are optional.
type Extras struct {
	// CorrelationID becomes errdetails.RequestInfo.
	CorrelationID string

	// RetryAfter becomes errdetails.RetryInfo when positive.
	RetryAfter time.Duration

	// Violations become errdetails.BadRequest (usually for 4xx).
	Violations []FieldViolation

	// Links become errdetails.Help.
	Links []Link
}

// MetaFn extracts Extras from context and the coded error.
// It can return an empty Extras if nothing is available.
type MetaFn func(ctx context.Context, err apis.CodedError) Extras

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// coded errors into gRPC statuses with errdetails attached.
//
// A nil mapper means mapper.Default(). Errors without a code are returned
// as-is.
func UnaryServerInterceptor(m apis.Mapper, metaFn MetaFn) grpc.UnaryServerInterceptor {
	conv := newConverter(m, metaFn)
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		return nil, conv.convert(ctx, err)
	}
}

// StreamServerInterceptor is the streaming counterpart of
// UnaryServerInterceptor.
func StreamServerInterceptor(m apis.Mapper, metaFn MetaFn) grpc.StreamServerInterceptor {
	conv := newConverter(m, metaFn)
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		if err := handler(srv, ss); err != nil {
			return conv.convert(ss.Context(), err)
		}
		return nil
	}
}

// ToStatus converts err into a gRPC status using m (nil means
// mapper.Default()). Errors without a code map to codes.Unknown with
// err.Error() as message, and a nil error to codes.OK.
func ToStatus(err error, m apis.Mapper, extras Extras) *gstatus.Status {
	if err == nil {
		return gstatus.New(gcodes.OK, "")
	}
	var ce apis.CodedError
	if !errors.As(err, &ce) {
		return gstatus.New(gcodes.Unknown, err.Error())
	}
	return newConverter(m, nil).status(ce, extras)
}

type converter struct {
	m      apis.Mapper
	metaFn MetaFn
}

func newConverter(m apis.Mapper, metaFn MetaFn) converter {
	if m == nil {
		m = mapper.Default()
	}
	if metaFn == nil {
		metaFn = func(context.Context, apis.CodedError) Extras { return Extras{} }
	}
	return converter{m: m, metaFn: metaFn}
}

func (c converter) convert(ctx context.Context, err error) error {
	var ce apis.CodedError
	if !errors.As(err, &ce) {
		// Not ours: return as-is.
		return err
	}
	return c.status(ce, c.metaFn(ctx, ce)).Err()
}

func (c converter) status(ce apis.CodedError, ex Extras) *gstatus.Status {
	view := adapter.ToView(ce)
	base := gstatus.New(c.m.GRPCStatus(view.Code), view.Message)

	details := []protoadapt.MessageV1{errorInfo(view)}
	if ex.CorrelationID != "" {
		details = append(details, &errdetails.RequestInfo{RequestId: ex.CorrelationID})
	}
	if ex.RetryAfter > 0 {
		details = append(details, &errdetails.RetryInfo{RetryDelay: durationpb.New(ex.RetryAfter)})
	}
	if len(ex.Violations) > 0 {
		br := &errdetails.BadRequest{}
		for _, v := range ex.Violations {
			br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
				Field:       v.Field,
				Description: v.Description,
			})
		}
		details = append(details, br)
	}
	if len(ex.Links) > 0 {
		help := &errdetails.Help{}
		for _, l := range ex.Links {
			help.Links = append(help.Links, &errdetails.Help_Link{Description: l.Description, Url: l.URL})
		}
		details = append(details, help)
	}

	// Try to attach details. If it fails, return base.
	if with, err := base.WithDetails(details...); err == nil {
		return with
	}
	return base
}

func errorInfo(view apis.ErrorView) *errdetails.ErrorInfo {
	info := &errdetails.ErrorInfo{
		Domain:   Domain,
		Metadata: map[string]string{MetaCode: strconv.FormatUint(uint64(view.Code), 10)},
	}
	if flag, _, err := code.Decode(view.Code); err == nil {
		info.Reason = flag.Tagged()
		info.Metadata[MetaCategory] = flag.Tagged()
	} else {
		info.Reason = "INVALID_CODE"
	}
	if view.Path != "" {
		info.Metadata[MetaPath] = view.Path
	}
	return info
}

// ExtractInfo pulls the errcode ErrorInfo out of a gRPC error, if present.
// Useful in tests and client code.
func ExtractInfo(err error) (*errdetails.ErrorInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, a := range st.Proto().GetDetails() {
		info := &errdetails.ErrorInfo{}
		if !a.MessageIs(info) {
			continue
		}
		if err := a.UnmarshalTo(info); err == nil && info.GetDomain() == Domain {
			return info, true
		}
	}
	return nil, false
}

// CodeFromError returns the code carried by a gRPC error produced by this
// package.
func CodeFromError(err error) (uint32, bool) {
	info, ok := ExtractInfo(err)
	if !ok {
		return 0, false
	}
	c, perr := strconv.ParseUint(info.GetMetadata()[MetaCode], 10, 32)
	if perr != nil {
		return 0, false
	}
	return uint32(c), true
}

// FromError rebuilds an *errcode.Error from a gRPC error. Statuses without
// errcode details are classified by their gRPC code into the matching
// built-in category at X00/Y00/Z00. A nil error yields nil.
func FromError(err error) *errcode.Error {
	if err == nil {
		return nil
	}
	st, _ := gstatus.FromError(err)
	if c, ok := CodeFromError(err); ok {
		e := errcode.FromCode(c, st.Message())
		if info, ok := ExtractInfo(err); ok {
			e.Path = info.GetMetadata()[MetaPath]
		}
		return e
	}
	cat := code.FromGRPC(st.Code())
	return errcode.FromCode(cat.Flag().Uint()*code.Multiplier, st.Message()).WithCause(err)
}
