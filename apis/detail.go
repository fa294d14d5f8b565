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

// Detail is one key/value pair attached to an error, in a form that
// survives JSON and protobuf Struct round-trips.
type Detail struct {
	// Key names the detail, e.g. "user_id" or "limit".
	Key string `json:"key"`

	// Value should be a JSON-compatible scalar, slice or map.
	Value any `json:"value,omitempty"`
}
