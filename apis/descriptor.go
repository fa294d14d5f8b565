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

package apis

// ErrorDescriptor is a flat description of one declared code together with
// its resolved transport statuses. Catalog tooling renders these.
type ErrorDescriptor struct {
	// Code is the wire-visible numeric code.
	Code uint32 `json:"code"`

	// Category is the tagged category flag, e.g. "E1004".
	Category string `json:"category"`

	// Path is the rendered classification path.
	Path string `json:"path"`

	// Message is the category text, or "<no message>" when it is empty.
	Message string `json:"message"`

	// HTTPStatus is the status a Mapper resolved for Code. Zero when no
	// mapper was consulted.
	HTTPStatus int `json:"http_status,omitempty"`

	// GRPCCode is the gRPC code a Mapper resolved for Code, as an integer.
	GRPCCode int `json:"grpc_code,omitempty"`
}
