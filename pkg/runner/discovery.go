package runner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/yaklabco/asmfmt/pkg/langdetect"
)

// File is a discovered source file.
type File struct {
	// Path is absolute and cleaned.
	Path string

	// Language is the linguist name derived from the extension.
	Language string
}

// Discover finds the source files selected by opts. The result is sorted
// by path and free of duplicates. Named input files are subject to the
// same extension and exclusion rules as files found by walking.
func Discover(ctx context.Context, opts Options) ([]File, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	d := &discoverer{
		opts:       opts,
		workDir:    workDir,
		extensions: opts.effectiveExtensions(),
		seen:       make(map[string]struct{}),
	}

	for _, input := range opts.effectivePaths() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}

		abs := input
		if !filepath.IsAbs(abs) {
			abs = filepath.Join(workDir, abs)
		}
		abs = filepath.Clean(abs)

		info, err := os.Stat(abs)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", input, err)
		}

		if info.IsDir() {
			if err := d.walk(ctx, abs); err != nil {
				return nil, err
			}
			continue
		}
		if err := d.consider(abs); err != nil {
			return nil, err
		}
	}

	slices.SortFunc(d.files, func(a, b File) int { return strings.Compare(a.Path, b.Path) })
	return d.files, nil
}

type discoverer struct {
	opts       Options
	workDir    string
	extensions []string
	seen       map[string]struct{}
	files      []File
}

func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	abs, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return abs, nil
}

// walk visits root recursively. Hidden directories, excluded directory
// names and directories matching an exclude glob are pruned. Unreadable
// directories are skipped.
func (d *discoverer) walk(ctx context.Context, root string) error {
	err := filepath.WalkDir(root, func(p string, entry fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			if errors.Is(walkErr, fs.ErrPermission) {
				return nil
			}
			return walkErr
		}

		if entry.IsDir() {
			if p != root && d.pruned(p, entry.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		if !entry.Type().IsRegular() || strings.HasPrefix(entry.Name(), ".") {
			return nil
		}
		return d.consider(p)
	})
	if err != nil {
		return fmt.Errorf("walk directory %s: %w", root, err)
	}
	return nil
}

func (d *discoverer) pruned(dir, name string) bool {
	if strings.HasPrefix(name, ".") || slices.Contains(d.opts.ExcludeDirs, name) {
		return true
	}
	return d.excluded(dir)
}

// consider adds a regular file when it has an eligible extension, is not
// excluded and does not look binary, generated or (optionally) vendored.
func (d *discoverer) consider(p string) error {
	if _, ok := d.seen[p]; ok {
		return nil
	}
	if !d.hasExtension(p) || d.excluded(p) || d.inExcludedDir(p) {
		return nil
	}

	head, err := langdetect.ReadHead(p)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return nil
		}
		return err
	}

	info := langdetect.Inspect(filepath.ToSlash(d.rel(p)), head)
	if info.Skip(d.opts.SkipVendored) {
		return nil
	}

	d.seen[p] = struct{}{}
	d.files = append(d.files, File{Path: p, Language: info.Language})
	return nil
}

func (d *discoverer) hasExtension(p string) bool {
	name := strings.ToLower(filepath.Base(p))
	for _, ext := range d.extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

func (d *discoverer) rel(p string) string {
	rel, err := filepath.Rel(d.workDir, p)
	if err != nil {
		return p
	}
	return rel
}

func (d *discoverer) excluded(p string) bool {
	rel := filepath.ToSlash(d.rel(p))
	for _, pattern := range d.opts.ExcludeGlobs {
		if matchGlob(filepath.ToSlash(pattern), rel) {
			return true
		}
	}
	return false
}

// inExcludedDir reports whether a named file sits below an excluded
// directory name relative to the working directory.
func (d *discoverer) inExcludedDir(p string) bool {
	rel := filepath.ToSlash(d.rel(p))
	dirs := strings.Split(path.Dir(rel), "/")
	for _, dir := range dirs {
		if slices.Contains(d.opts.ExcludeDirs, dir) {
			return true
		}
	}
	return false
}

// matchGlob matches a slash-separated relative path against a glob.
// A pattern without a slash matches at any depth. A pattern that matches a
// leading part of the path matches the whole path, so "build/**" and "build"
// both exclude everything under build.
func matchGlob(pattern, rel string) bool {
	pattern = strings.TrimSuffix(strings.TrimPrefix(pattern, "./"), "/")
	if pattern == "" {
		return false
	}
	if !strings.Contains(pattern, "/") {
		pattern = "**/" + pattern
	}

	for _, candidate := range []string{pattern, pattern + "/**"} {
		if ok, err := doublestar.Match(candidate, rel); err == nil && ok {
			return true
		}
	}
	return false
}
