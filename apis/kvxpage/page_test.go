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

package kvxpage

import "testing"

func TestBorrowedItemReturnsUnderlyingBytes(t *testing.T) {
	page := Page("hello world")
	item := BorrowedItem(page)

	if item.IsOwned() {
		t.Fatal("expected borrowed item to report IsOwned() == false")
	}
	if got := string(item.Bytes()); got != "hello world" {
		t.Fatalf("Bytes() = %q, want %q", got, "hello world")
	}
	if item.Len() != len("hello world") {
		t.Fatalf("Len() = %d, want %d", item.Len(), len("hello world"))
	}
}

func TestOwnedItemCopiesNoExternalState(t *testing.T) {
	item := OwnedItem("synthetic")

	if !item.IsOwned() {
		t.Fatal("expected owned item to report IsOwned() == true")
	}
	if got := string(item.Bytes()); got != "synthetic" {
		t.Fatalf("Bytes() = %q, want %q", got, "synthetic")
	}
}

func TestPageLen(t *testing.T) {
	p := Page("abcde")
	if p.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", p.Len())
	}
}
