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

package logging

import "testing"

func TestNewProductionLogger(t *testing.T) {
	log, err := New(false)
	if err != nil {
		t.Fatalf("New(false) error: %v", err)
	}
	if log == nil {
		t.Fatal("expected a non-nil logger")
	}
}

func TestNewDevelopmentLogger(t *testing.T) {
	log, err := New(true)
	if err != nil {
		t.Fatalf("New(true) error: %v", err)
	}
	if log == nil {
		t.Fatal("expected a non-nil logger")
	}
}
