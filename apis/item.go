/*
   Copyright 2026 The CMSFX Authors.

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

// Item is the entity currently being rendered in the host's list view.
// The host owns it; augmenters treat it as read-only.
type Item interface {
	// ItemID returns the item's unique integer identifier.
	ItemID() int64
}

// ItemID is a convenience Item over a bare identifier, for hosts whose
// list entries are not structs (and for tests).
type ItemID int64

// ItemID returns the identifier itself.
func (id ItemID) ItemID() int64 { return int64(id) }
