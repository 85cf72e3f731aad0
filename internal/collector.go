package internal

import (
	"fmt"
	"os"
	"path/filepath"
)

// Collect enumerates every regular file reachable from root. A file
// root yields a single-element list; a directory root is walked
// recursively, parent before children, siblings in ReadDir order.
// Symlinks and other non-regular entries are skipped without following.
// All failures are non-fatal: the affected subtree is skipped and the
// condition goes to diag, so the result is always whatever could be
// gathered.
func Collect(root string, diag Reporter) []string {
	info, err := os.Lstat(root)
	if err != nil {
		if os.IsNotExist(err) {
			diag.Report(fmt.Sprintf("Input path [%s] does not exist", root))
		} else {
			diag.Report(fmt.Sprintf("Error accessing path [%s]: %v", root, err))
		}
		return nil
	}

	var files []string
	switch {
	case info.Mode().IsRegular():
		files = append(files, root)
	case info.IsDir():
		files = collectDir(root, files, diag)
	default:
		diag.Report(fmt.Sprintf("Input path [%s] is not a regular file or a directory", root))
		return nil
	}

	if len(files) > 0 {
		diag.Report(fmt.Sprintf("%d files found", len(files)))
	}
	return files
}

// collectDir appends the regular files under dir. An unreadable
// directory drops only its own subtree.
func collectDir(dir string, files []string, diag Reporter) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsPermission(err) {
			diag.Report(fmt.Sprintf("Permission denied, cannot access directory: %s", dir))
		} else {
			diag.Report(fmt.Sprintf("Error reading directory %s: %v", dir, err))
		}
		return files
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		switch {
		case entry.IsDir():
			files = collectDir(path, files, diag)
		case entry.Type().IsRegular():
			files = append(files, path)
		}
		// symlinks, devices, sockets: skipped
	}
	return files
}
