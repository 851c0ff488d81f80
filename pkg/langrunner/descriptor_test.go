// Copyright 2026 The Cpast Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package langrunner

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewSourceDescriptorFileNotFound(t *testing.T) {
	_, err := NewSourceDescriptor(filepath.Join(t.TempDir(), "missing.py"))
	rErr, ok := err.(*Error)
	if !ok || rErr.Kind != KindFileNotFound {
		t.Fatalf("err = %v, want KindFileNotFound", err)
	}
}

func TestNewSourceDescriptorUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "source.go")
	if err := os.WriteFile(path, []byte("package main\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := NewSourceDescriptor(path)
	rErr, ok := err.(*Error)
	if !ok || rErr.Kind != KindUnsupportedLanguage {
		t.Fatalf("err = %v, want KindUnsupportedLanguage", err)
	}
}

func TestNewSourceDescriptorFromText(t *testing.T) {
	d, err := NewSourceDescriptorFromText("print('hi')\n", Python)
	if err != nil {
		t.Fatalf("NewSourceDescriptorFromText error: %v", err)
	}
	if filepath.Ext(d.SourcePath) != ".py" {
		t.Errorf("SourcePath = %q, want .py extension", d.SourcePath)
	}
	data, err := os.ReadFile(d.SourcePath)
	if err != nil {
		t.Fatalf("read materialized source: %v", err)
	}
	if string(data) != "print('hi')\n" {
		t.Errorf("materialized source = %q", data)
	}
}

func TestRemake(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "main.c")
	artifact := filepath.Join(dir, "main")

	if err := os.WriteFile(source, []byte("int main(){}"), 0o644); err != nil {
		t.Fatal(err)
	}

	stale, err := remake(source, artifact)
	if err != nil {
		t.Fatalf("remake error: %v", err)
	}
	if !stale {
		t.Error("remake = false for a missing artifact, want true")
	}

	if err := os.WriteFile(artifact, []byte("elf"), 0o644); err != nil {
		t.Fatal(err)
	}
	future := time.Now().Add(time.Hour)
	if err := os.Chtimes(artifact, future, future); err != nil {
		t.Fatal(err)
	}
	stale, err = remake(source, artifact)
	if err != nil {
		t.Fatalf("remake error: %v", err)
	}
	if stale {
		t.Error("remake = true for an artifact newer than its source, want false")
	}

	past := time.Now().Add(-time.Hour)
	if err := os.Chtimes(artifact, past, past); err != nil {
		t.Fatal(err)
	}
	stale, err = remake(source, artifact)
	if err != nil {
		t.Fatalf("remake error: %v", err)
	}
	if !stale {
		t.Error("remake = false for an artifact older than its source, want true")
	}
}
