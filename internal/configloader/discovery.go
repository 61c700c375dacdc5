package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// appName names the system and user configuration directories.
const appName = "asmfmt"

// ProjectConfigName is the file written by "asmfmt init".
const ProjectConfigName = ".asmfmt.yml"

// ConfigPaths holds the configuration file found for each layer. Layers
// without a file are empty.
type ConfigPaths struct {
	System   string // /etc/asmfmt/config.yaml or %ProgramData%\asmfmt
	User     string // $XDG_CONFIG_HOME/asmfmt/config.yaml
	Project  string // nearest .asmfmt.yml above the working directory
	Explicit string // --config
}

//nolint:gochecknoglobals // Read-only lookup table.
var (
	// directoryConfigFiles are looked up inside the system and user dirs.
	directoryConfigFiles = []string{"config.yaml", "config.yml", "config.toml"}

	// projectConfigFiles are looked up while walking up from the working
	// directory, in order of preference.
	projectConfigFiles = []string{
		ProjectConfigName, ".asmfmt.yaml", ".asmfmt.toml",
		"asmfmt.yml", "asmfmt.yaml", "asmfmt.toml",
	}

	// vcsRootMarkers end the upward project search.
	vcsRootMarkers = []string{".git", ".hg", ".svn"}
)

// DiscoverPaths locates the system, user and project configuration files.
// A missing file is not an error.
func DiscoverPaths(ctx context.Context, workDir string) (*ConfigPaths, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context cancelled: %w", err)
	}

	project, err := FindProjectConfig(ctx, workDir)
	if err != nil {
		return nil, err
	}

	return &ConfigPaths{
		System:  firstFile(systemConfigDir(), directoryConfigFiles),
		User:    firstFile(userConfigDir(), directoryConfigFiles),
		Project: project,
	}, nil
}

func systemConfigDir() string {
	if runtime.GOOS != "windows" {
		return filepath.Join("/etc", appName)
	}
	root := os.Getenv("ProgramData")
	if root == "" {
		root = `C:\ProgramData`
	}
	return filepath.Join(root, appName)
}

func userConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName)
}

// FindProjectConfig walks up from startDir and returns the first project
// config file it meets. The walk ends without a result at a VCS root, the
// home directory or the filesystem root.
func FindProjectConfig(ctx context.Context, startDir string) (string, error) {
	if startDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		startDir = wd
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	home, _ := os.UserHomeDir()

	for {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("context cancelled: %w", err)
		}
		if path := firstFile(dir, projectConfigFiles); path != "" {
			return path, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir || dir == home || firstDir(dir, vcsRootMarkers) {
			return "", nil
		}
		dir = parent
	}
}

// firstFile returns the first of names that is a regular file in dir.
func firstFile(dir string, names []string) string {
	if dir == "" {
		return ""
	}
	for _, name := range names {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path
		}
	}
	return ""
}

// firstDir reports whether any of names is a directory in dir.
func firstDir(dir string, names []string) bool {
	for _, name := range names {
		if info, err := os.Stat(filepath.Join(dir, name)); err == nil && info.IsDir() {
			return true
		}
	}
	return false
}

// IsTOMLConfig reports whether path names a TOML config file.
func IsTOMLConfig(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
