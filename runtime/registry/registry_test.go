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

package registry

import (
	"context"
	"testing"
)

type widgetSpec struct{ name string }

func TestRegisterAndBuild(t *testing.T) {
	r := New[string, widgetSpec]()

	if err := r.Register(Key{Kind: "file"}, func(_ context.Context, s widgetSpec) (string, error) {
		return "built:" + s.name, nil
	}); err != nil {
		t.Fatalf("Register() error: %v", err)
	}

	got, err := r.Build(context.Background(), Key{Kind: "file"}, widgetSpec{name: "x"})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if got != "built:x" {
		t.Fatalf("Build() = %q, want %q", got, "built:x")
	}
}

func TestBuildUnregisteredKeyErrors(t *testing.T) {
	r := New[string, widgetSpec]()
	if _, err := r.Build(context.Background(), Key{Kind: "missing"}, widgetSpec{}); err == nil {
		t.Fatal("expected an error for an unregistered key")
	}
}

func TestRegisterDuplicateKeyErrors(t *testing.T) {
	r := New[string, widgetSpec]()
	b := func(_ context.Context, s widgetSpec) (string, error) { return "", nil }

	if err := r.Register(Key{Kind: "file"}, b); err != nil {
		t.Fatalf("first Register() error: %v", err)
	}
	if err := r.Register(Key{Kind: "file"}, b); err == nil {
		t.Fatal("expected an error registering a duplicate key")
	}
}

func TestSealRejectsFurtherRegistration(t *testing.T) {
	r := New[string, widgetSpec]()
	r.Seal()

	err := r.Register(Key{Kind: "file"}, func(_ context.Context, s widgetSpec) (string, error) { return "", nil })
	if err == nil {
		t.Fatal("expected an error registering against a sealed registry")
	}
}

func TestCaseFoldLowerMatchesAnyCase(t *testing.T) {
	r := New[string, widgetSpec](WithCaseFoldLower())
	if err := r.Register(Key{Kind: "File"}, func(_ context.Context, s widgetSpec) (string, error) {
		return "ok", nil
	}); err != nil {
		t.Fatalf("Register() error: %v", err)
	}

	got, err := r.Build(context.Background(), Key{Kind: "FILE"}, widgetSpec{})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if got != "ok" {
		t.Fatalf("Build() = %q, want %q", got, "ok")
	}
}

func TestMustRegisterPanicsOnDuplicate(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected MustRegister to panic on a duplicate key")
		}
	}()

	r := New[string, widgetSpec]()
	b := func(_ context.Context, s widgetSpec) (string, error) { return "", nil }
	MustRegister(r, Key{Kind: "dup"}, b)
	MustRegister(r, Key{Kind: "dup"}, b)
}

func TestKeyStringOmitsEmptyName(t *testing.T) {
	if got := (Key{Kind: "file"}).String(); got != "file" {
		t.Fatalf("String() = %q, want %q", got, "file")
	}
	if got := (Key{Kind: "file", Name: "primary"}).String(); got != "file/primary" {
		t.Fatalf("String() = %q, want %q", got, "file/primary")
	}
}
