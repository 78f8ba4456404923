package cmd

import (
	"os"
	"path/filepath"
)

// DieIfNotAccessible exits the process if the path is not accessible.
func DieIfNotAccessible(path string) {
	_, err := os.Stat(path)
	if err != nil {
		logFatalln(err)
	}
}

// DieIfNotDirectory exits the process if the path is not a directory.
func DieIfNotDirectory(path string) {
	fileInfo, err := os.Stat(path)
	if err != nil {
		logFatalln(err)
	}
	if !fileInfo.IsDir() {
		logFatalln("'" + path + "' is not a directory")
	}
}

func createPath(path string) error {
	return os.MkdirAll(path, 0700)
}

func sanitizePath(path string) (string, error) {
	return filepath.Abs(filepath.Clean(path))
}
