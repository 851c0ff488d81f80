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

// Package langrunner compiles or interprets source files in several
// languages, caches compilation artifacts across runs, and executes the
// result under wall-clock and memory limits.
package langrunner

// Language tags one of the source languages the runner knows how to build
// and execute.
type Language int

const (
	Python Language = iota
	Cpp
	C
	Rust
	Ruby
	JavaScript
	Java
)

func (l Language) String() string {
	switch l {
	case Python:
		return "python"
	case Cpp:
		return "cpp"
	case C:
		return "c"
	case Rust:
		return "rust"
	case Ruby:
		return "ruby"
	case JavaScript:
		return "javascript"
	case Java:
		return "java"
	default:
		return "unknown"
	}
}

// CompilationClass is a total function of Language: every language is
// exactly one of these three.
type CompilationClass int

const (
	Compiled CompilationClass = iota
	Interpreted
	Bytecode
)

// ClassOf returns l's compilation class.
func ClassOf(l Language) CompilationClass {
	switch l {
	case C, Cpp, Rust:
		return Compiled
	case Python, Ruby, JavaScript:
		return Interpreted
	case Java:
		return Bytecode
	default:
		return Interpreted
	}
}

// LanguageFromExt maps a bare file extension (no leading dot) to a
// Language. ok is false for an unrecognized extension.
func LanguageFromExt(ext string) (lang Language, ok bool) {
	switch ext {
	case "rs":
		return Rust, true
	case "py":
		return Python, true
	case "c":
		return C, true
	case "cpp", "cxx", "c++", "cc", "C":
		return Cpp, true
	case "java":
		return Java, true
	case "js":
		return JavaScript, true
	case "rb":
		return Ruby, true
	default:
		return 0, false
	}
}

// extensionFor is LanguageFromExt's inverse, used when materializing
// in-memory source text into a temporary file.
func extensionFor(lang Language) string {
	switch lang {
	case Rust:
		return "rs"
	case Python:
		return "py"
	case C:
		return "c"
	case Cpp:
		return "cpp"
	case Java:
		return "java"
	case JavaScript:
		return "js"
	case Ruby:
		return "rb"
	default:
		return "txt"
	}
}

// compileTool is one compiler candidate: the program name on PATH, and how
// to build its argument list from the artifact stem and the source path.
type compileTool struct {
	Program string
	Args    func(stem, source string) []string
}

// compilePriority lists, for each Compiled/Bytecode language, the
// compilers to try in order; the first that succeeds wins.
var compilePriority = map[Language][]compileTool{
	C: {
		{"gcc", func(stem, source string) []string { return []string{"-o", stem, source} }},
		{"clang", func(stem, source string) []string { return []string{"-o", stem, source} }},
		{"zig", func(stem, source string) []string { return []string{"cc", "-o", stem, source} }},
	},
	Cpp: {
		{"g++", func(stem, source string) []string { return []string{"-o", stem, source} }},
		{"clang++", func(stem, source string) []string { return []string{"-o", stem, source} }},
		{"zig", func(stem, source string) []string { return []string{"c++", "-o", stem, source} }},
	},
	Rust: {
		{"rustc", func(stem, source string) []string { return []string{"-o", stem, source} }},
	},
	Java: {
		{"javac", func(stem, source string) []string { return []string{source} }},
	},
}

// interpretTool is one interpreter candidate: the program name on PATH, and
// how to build its argument list from the source path.
type interpretTool struct {
	Program string
	Args    func(source string) []string
}

// interpretPriority lists, for each Interpreted language, the interpreters
// to try in order; the first that succeeds wins.
var interpretPriority = map[Language][]interpretTool{
	Python: {
		{"python3", func(source string) []string { return []string{source} }},
		{"python", func(source string) []string { return []string{source} }},
	},
	Ruby: {
		{"ruby", func(source string) []string { return []string{source} }},
	},
	JavaScript: {
		{"node", func(source string) []string { return []string{source} }},
		{"deno", func(source string) []string { return []string{"run", source} }},
		{"bun", func(source string) []string { return []string{source} }},
	},
}
