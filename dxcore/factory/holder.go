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

package factory

// Holder is the single mutable product slot of a factory instance.
//
// Bound method handlers write the product under construction into the
// holder with Set, and the reserved accessor reads it back with Get. The
// slot starts empty: Get returns nil until the first Set, and every Set
// replaces the previous value outright. A Holder belongs to exactly one
// factory instance and is not safe for concurrent use.
type Holder struct {
	product any
}

// Get returns the current product, or nil when nothing has been stored
// yet.
func (h *Holder) Get() any {
	return h.product
}

// Set stores v as the current product, replacing any previous value.
// Storing nil resets the slot to its empty state.
func (h *Holder) Set(v any) {
	h.product = v
}
