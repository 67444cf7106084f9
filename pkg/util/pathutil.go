package util

import (
	"os"
	"strings"
)

// FileExists reports whether path can be opened for reading. A directory,
// a missing file, or a permission failure all count as "does not exist"
// for the purposes of input validation.
func FileExists(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// HasExtension reports whether path ends in exactly ext (case-sensitive).
// A '.' must be present in the path; a bare name never matches.
func HasExtension(path, ext string) bool {
	pos := strings.LastIndexByte(path, '.')
	if pos < 0 {
		return false
	}
	return path[pos:] == ext
}

// SplitPath splits a path at its last separator into directory and file
// name. A path without a separator yields an empty directory and the whole
// string as the file name.
func SplitPath(path string) (dir, file string) {
	pos := strings.LastIndexAny(path, `/\`)
	if pos < 0 {
		return "", path
	}
	return path[:pos], path[pos+1:]
}

// RunHandle returns name with its final extension removed, or name itself
// when it contains no '.'. The handle tags derived output files.
func RunHandle(name string) string {
	pos := strings.LastIndexByte(name, '.')
	if pos < 0 {
		return name
	}
	return name[:pos]
}
