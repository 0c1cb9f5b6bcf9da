/*
   Copyright 2025 The kvx Authors.

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

// Package kvxpage defines the data model shared by every Source, Transform
// and Composer implementation: Page and Item.
//
// This package intentionally has no I/O and no dependency on any backend
// package. It is the vocabulary the rest of kvx is written in.
package kvxpage

// Page is an opaque, contiguous chunk of source bytes, typically
// newline-delimited documents. A Page has no leading or trailing newline:
// Source implementations strip per-line terminators before joining with
// '\n'.
type Page []byte

// Len returns the size of the page in bytes.
func (p Page) Len() int { return len(p) }

// Item is one logical unit produced by a Transform from a Page.
//
// An Item is either Borrowed (a slice of the originating Page, zero-copy)
// or Owned (a freshly allocated string, used when the transform rewrites
// the document). Exactly one of Borrowed/Owned is meaningful; which one is
// indicated by isOwned.
type Item struct {
	borrowed []byte
	owned    string
	isOwned  bool
}

// BorrowedItem wraps a slice of an existing Page without copying it.
// Callers must not retain the slice past the lifetime of the Page's
// residence in a buffer.
func BorrowedItem(b []byte) Item {
	return Item{borrowed: b}
}

// OwnedItem wraps a freshly allocated string produced by a transform.
func OwnedItem(s string) Item {
	return Item{owned: s, isOwned: true}
}

// IsOwned reports whether the item owns its bytes.
func (it Item) IsOwned() bool { return it.isOwned }

// Bytes returns the byte view of the item regardless of how it was
// constructed. For a borrowed item this is the original slice (no copy);
// for an owned item it converts the string to bytes.
func (it Item) Bytes() []byte {
	if it.isOwned {
		return []byte(it.owned)
	}
	return it.borrowed
}

// Len returns the byte length of the item's content.
func (it Item) Len() int {
	if it.isOwned {
		return len(it.owned)
	}
	return len(it.borrowed)
}
