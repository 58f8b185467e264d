// Package fileutil provides directory scanning for configuration files.
//
// Scanning is error tolerant: unreadable subtrees are recorded and skipped,
// a missing or non-directory root yields an empty result rather than an
// error, and output is sorted for deterministic behavior across platforms.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ScanOptions configures the directory scanning behavior
type ScanOptions struct {
	// Extensions is a list of file extensions to include (e.g., ".yaml")
	Extensions []string
	// ExcludeDirs is a list of directory names to skip (e.g., "node_modules")
	ExcludeDirs []string
}

// ScanResult contains the results of a directory scan
type ScanResult struct {
	// Files contains the paths of all matched files, sorted
	Files []string
	// Errors contains any non-fatal errors encountered during scanning
	Errors []error
}

// ScanDirectory walks root recursively and returns every file whose
// extension matches opts.Extensions. A root that does not exist or is not a
// directory produces an empty result, not an error: downstream aggregation
// treats "nothing to scan" as a successful zero-total run. Hidden
// directories and any directory named in opts.ExcludeDirs are skipped.
func ScanDirectory(root string, opts ScanOptions) *ScanResult {
	result := &ScanResult{
		Files:  make([]string, 0),
		Errors: make([]error, 0),
	}

	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return result
	}

	extMap := make(map[string]bool)
	for _, ext := range opts.Extensions {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		extMap[strings.ToLower(ext)] = true
	}

	excludeMap := make(map[string]bool)
	for _, dir := range opts.ExcludeDirs {
		excludeMap[dir] = true
	}

	walkErr := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("error accessing %s: %w", path, err))
			return nil // Continue walking
		}

		if path == root {
			return nil
		}

		if d.IsDir() {
			if excludeMap[d.Name()] || strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if len(extMap) > 0 && !extMap[strings.ToLower(filepath.Ext(d.Name()))] {
			return nil
		}

		result.Files = append(result.Files, path)
		return nil
	})
	if walkErr != nil {
		// WalkDir only fails here if the walk function returns an error,
		// which ours never does; record it and carry on regardless.
		result.Errors = append(result.Errors, fmt.Errorf("failed to walk %s: %w", root, walkErr))
	}

	sort.Strings(result.Files)

	return result
}
