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

import "testing"

func TestLanguageFromExt(t *testing.T) {
	for _, tt := range []struct {
		ext  string
		want Language
		ok   bool
	}{
		{"rs", Rust, true},
		{"py", Python, true},
		{"c", C, true},
		{"cpp", Cpp, true},
		{"cxx", Cpp, true},
		{"c++", Cpp, true},
		{"cc", Cpp, true},
		{"C", Cpp, true},
		{"java", Java, true},
		{"js", JavaScript, true},
		{"rb", Ruby, true},
		{"go", 0, false},
	} {
		t.Run(tt.ext, func(t *testing.T) {
			got, ok := LanguageFromExt(tt.ext)
			if ok != tt.ok {
				t.Fatalf("LanguageFromExt(%q) ok = %v, want %v", tt.ext, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("LanguageFromExt(%q) = %v, want %v", tt.ext, got, tt.want)
			}
		})
	}
}

func TestExtensionForRoundTrips(t *testing.T) {
	for _, lang := range []Language{Python, Cpp, C, Rust, Ruby, JavaScript, Java} {
		ext := extensionFor(lang)
		got, ok := LanguageFromExt(ext)
		if !ok {
			t.Fatalf("extensionFor(%v) = %q, which LanguageFromExt rejects", lang, ext)
		}
		if got != lang {
			t.Errorf("round trip for %v produced %v via ext %q", lang, got, ext)
		}
	}
}

func TestClassOf(t *testing.T) {
	for _, tt := range []struct {
		lang Language
		want CompilationClass
	}{
		{C, Compiled},
		{Cpp, Compiled},
		{Rust, Compiled},
		{Python, Interpreted},
		{Ruby, Interpreted},
		{JavaScript, Interpreted},
		{Java, Bytecode},
	} {
		if got := ClassOf(tt.lang); got != tt.want {
			t.Errorf("ClassOf(%v) = %v, want %v", tt.lang, got, tt.want)
		}
	}
}
