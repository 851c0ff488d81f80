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
)

func writeJavaFixture(t *testing.T, src string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "Source.java")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestPublicJavaClassName(t *testing.T) {
	for _, tt := range []struct {
		name string
		src  string
		want string
	}{
		{
			"plain public class",
			"public class Solution {\n}\n",
			"Solution",
		},
		{
			"public final class",
			"public final class Solution {\n}\n",
			"Solution",
		},
		{
			"public abstract class",
			"public abstract class Solution {\n}\n",
			"Solution",
		},
		{
			"public strictfp class",
			"public strictfp class Solution {\n}\n",
			"Solution",
		},
		{
			"with extends",
			"public class Solution extends Base {\n}\n",
			"Solution",
		},
		{
			"with implements",
			"public class Solution implements Runnable {\n}\n",
			"Solution",
		},
		{
			"preceded by comment",
			"// entry point\npublic class Solution {\n}\n",
			"Solution",
		},
		{
			"package-private class only",
			"class Helper {\n}\n",
			"",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			path := writeJavaFixture(t, tt.src)
			got, err := publicJavaClassName(path)
			if err != nil {
				t.Fatalf("publicJavaClassName error: %v", err)
			}
			if got != tt.want {
				t.Errorf("publicJavaClassName = %q, want %q", got, tt.want)
			}
		})
	}
}
