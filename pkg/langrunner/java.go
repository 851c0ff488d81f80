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
	"regexp"
)

// javaPublicClassRe finds the name of the top-level public class in a Java
// source file, which javac requires to match the file's base name.
var javaPublicClassRe = regexp.MustCompile(`(?im)\bpublic\s+(?:(?:abstract|final|strictfp)\s+)?class\s+([A-Za-z_][A-Za-z0-9_$]*)`)

// publicJavaClassName scans path for a public class declaration and returns
// its name. It returns "" with a nil error when no public class is found;
// the caller falls back to the source file's own base name in that case.
func publicJavaClassName(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	m := javaPublicClassRe.FindSubmatch(data)
	if m == nil {
		return "", nil
	}
	return string(m[1]), nil
}
