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
	"context"
	"os"
	"path/filepath"
	"strings"
)

// SourceDescriptor is one program under test: its source file, the
// language it's written in, and (once Warmup has run) the path to its
// compiled artifact.
type SourceDescriptor struct {
	SourcePath   string
	ArtifactPath string
	Language     Language
	Class        CompilationClass

	compiled bool
}

// NewSourceDescriptor builds a descriptor for an on-disk source file,
// inferring its language from the file extension.
func NewSourceDescriptor(path string) (*SourceDescriptor, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, &Error{Kind: KindFileNotFound, Path: path}
	}
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	lang, ok := LanguageFromExt(ext)
	if !ok {
		return nil, &Error{Kind: KindUnsupportedLanguage, Path: path}
	}
	return &SourceDescriptor{SourcePath: path, Language: lang, Class: ClassOf(lang)}, nil
}

// NewSourceDescriptorFromText materializes in-memory source text into a
// temporary file and builds a descriptor for it. This resolves the
// in-memory source case a purely path-based descriptor can't represent.
func NewSourceDescriptorFromText(text string, lang Language) (*SourceDescriptor, error) {
	dir, err := os.MkdirTemp("", "cpast-src-")
	if err != nil {
		return nil, err
	}
	path := filepath.Join(dir, "program."+extensionFor(lang))
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return nil, err
	}
	return &SourceDescriptor{SourcePath: path, Language: lang, Class: ClassOf(lang)}, nil
}

// Warmup prepares d for execution: it compiles Compiled/Bytecode languages
// once and is a no-op for Interpreted ones. The first call skips compiling
// when the artifact on disk is not older than the source. Once a call has
// succeeded, later calls on the same descriptor return at once unless force
// is set; they do not check the source file again.
func (d *SourceDescriptor) Warmup(ctx context.Context, force bool) error {
	if d.Class == Interpreted {
		return nil
	}
	return d.compile(ctx, force)
}

func (d *SourceDescriptor) compile(ctx context.Context, force bool) error {
	stem := strings.TrimSuffix(filepath.Base(d.SourcePath), filepath.Ext(d.SourcePath))
	dir := filepath.Dir(d.SourcePath)

	var artifact string
	if d.Language == Java {
		if classname, err := publicJavaClassName(d.SourcePath); err == nil && classname != "" {
			stem = classname
		}
		artifact = filepath.Join(dir, stem+".class")
	} else {
		artifact = filepath.Join(dir, stem)
	}

	if d.compiled && !force {
		d.ArtifactPath = artifact
		return nil
	}
	if !force {
		stale, err := remake(d.SourcePath, artifact)
		if err == nil && !stale {
			d.compiled = true
			d.ArtifactPath = artifact
			return nil
		}
	}

	tools, ok := compilePriority[d.Language]
	if !ok {
		return &Error{Kind: KindUnsupportedLanguage, Path: d.SourcePath}
	}

	var lastErr error
	for _, tool := range tools {
		buildArtifact := artifact
		if d.Language == Java {
			buildArtifact = filepath.Join(dir, stem)
		}
		args := tool.Args(buildArtifact, d.SourcePath)
		if _, err := runProgram(ctx, tool.Program, args, Limits{}); err != nil {
			lastErr = err
			continue
		}
		d.compiled = true
		d.ArtifactPath = artifact
		return nil
	}
	return &Error{Kind: KindWarmupCompileFatal, Path: d.SourcePath, Err: lastErr}
}

// remake reports whether artifact is missing or older than source and
// therefore needs rebuilding. It is adapted from GNU Make's mtime
// comparison; the original Rust runner compares the artifact's creation
// time instead, but os.FileInfo exposes no portable creation time, so
// mtime-vs-mtime is the closest equivalent the standard library offers.
func remake(source, artifact string) (bool, error) {
	artifactInfo, err := os.Stat(artifact)
	if os.IsNotExist(err) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	sourceInfo, err := os.Stat(source)
	if err != nil {
		return false, err
	}
	return sourceInfo.ModTime().After(artifactInfo.ModTime()), nil
}

// Run executes d under limits with stdin fed to the program, returning its
// captured stdout.
func (d *SourceDescriptor) Run(ctx context.Context, stdin string, limits Limits) (string, error) {
	switch d.Class {
	case Compiled:
		return runProgramWithInput(ctx, d.ArtifactPath, nil, stdin, limits)
	case Bytecode:
		dir := filepath.Dir(d.ArtifactPath)
		stem := strings.TrimSuffix(filepath.Base(d.ArtifactPath), filepath.Ext(d.ArtifactPath))
		return runProgramWithInput(ctx, "java", []string{"-cp", dir, stem}, stdin, limits)
	case Interpreted:
		tools, ok := interpretPriority[d.Language]
		if !ok {
			return "", &Error{Kind: KindUnsupportedLanguage, Path: d.SourcePath}
		}
		var lastErr error
		for _, tool := range tools {
			out, err := runProgramWithInput(ctx, tool.Program, tool.Args(d.SourcePath), stdin, limits)
			if err != nil {
				lastErr = err
				continue
			}
			return out, nil
		}
		return "", lastErr
	default:
		return "", &Error{Kind: KindUnsupportedLanguage, Path: d.SourcePath}
	}
}
