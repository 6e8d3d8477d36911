// Package ronmigrate rewrites RON animation graph assets from the old
// node schema to the new one.
//
// This module is a port of the Python conversion script shipped
// alongside the animation graph assets, with additional support for
// custom patterns, dry runs, and per-file match reporting.
package ronmigrate

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

const defaultInputDir string = "animation_graphs_old"
const defaultOutputDir string = "animation_graphs"
const defaultSuffix string = ".ron"

// FileResult reports the outcome of processing one file.
type FileResult struct {
	Name    string
	Matches int
	Changed bool
}

// BatchParams contains parameters for a directory batch operation.
//
// Zero values select the original migration layout: read
// animation_graphs_old, write animation_graphs, process files ending
// in ".ron". If DryRun = true, nothing is created or written.
type BatchParams struct {
	InputDir  string
	OutputDir string
	Suffix    string
	DryRun    bool
}

// ProcessFile reads the file at inputPath, transforms its content, and
// writes the result to outputPath, overwriting any existing file. An
// empty outputPath transforms without writing.
//
// The fragment count is recorded under the input's base name in
// Stats(). Errors are I/O errors from fsys, propagated as-is; a failed
// write may leave a truncated output file behind.
func (r *Rewriter) ProcessFile(fsys afero.Fs, inputPath, outputPath string) (FileResult, error) {
	name := filepath.Base(inputPath)
	content, err := afero.ReadFile(fsys, inputPath)
	if err != nil {
		return FileResult{Name: name}, err
	}

	text := string(content)
	transformed := r.Transform(text)
	matches := r.MatchCount(text)
	r.recordMatches(name, matches)

	result := FileResult{Name: name, Matches: matches, Changed: transformed != text}
	if outputPath == "" {
		return result, nil
	}
	if err := afero.WriteFile(fsys, outputPath, []byte(transformed), 0644); err != nil {
		return result, err
	}
	return result, nil
}

// ProcessDirectory ensures p.OutputDir exists, then applies
// ProcessFile to every regular file in p.InputDir whose name ends with
// p.Suffix, writing each result under the same name in p.OutputDir.
// Other entries (subdirectories, symbolic links, non-matching
// suffixes) are skipped silently.
//
// Files are processed sequentially and the first error aborts the
// batch; the results accumulated so far are returned alongside the
// error, and files not yet reached are left untouched.
func (r *Rewriter) ProcessDirectory(fsys afero.Fs, p BatchParams) ([]FileResult, error) {
	if p.InputDir == "" {
		p.InputDir = defaultInputDir
	}
	if p.OutputDir == "" {
		p.OutputDir = defaultOutputDir
	}
	if p.Suffix == "" {
		p.Suffix = defaultSuffix
	}

	if !p.DryRun {
		if err := fsys.MkdirAll(p.OutputDir, 0755); err != nil {
			return nil, err
		}
	}

	entries, err := afero.ReadDir(fsys, p.InputDir)
	if err != nil {
		return nil, err
	}

	var results []FileResult
	for _, entry := range entries {
		if !entry.Mode().IsRegular() || !strings.HasSuffix(entry.Name(), p.Suffix) {
			continue
		}
		outputPath := filepath.Join(p.OutputDir, entry.Name())
		if p.DryRun {
			outputPath = ""
		}
		result, err := r.ProcessFile(fsys, filepath.Join(p.InputDir, entry.Name()), outputPath)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
	return results, nil
}
