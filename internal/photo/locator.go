package photo

import (
	"path/filepath"
	"strings"

	"github.com/karrick/godirwalk"
	"k8s.io/klog/v2"
)

// Discover walks each album directory recursively and returns the absolute
// paths of all image files found. Missing or unreadable directories are
// logged and skipped; an empty result is not an error.
func Discover(albumDirs []string) []string {
	var paths []string
	for _, albumDir := range albumDirs {
		err := godirwalk.Walk(albumDir, &godirwalk.Options{
			Callback: func(path string, de *godirwalk.Dirent) error {
				if de.IsDir() {
					return nil
				}
				if !isImageFile(path) {
					return nil
				}
				abs, err := filepath.Abs(path)
				if err != nil {
					klog.Warningf("skipping %s: %v", path, err)
					return nil
				}
				paths = append(paths, abs)
				return nil
			},
			ErrorCallback: func(path string, err error) godirwalk.ErrorAction {
				klog.Warningf("error accessing %s: %v", path, err)
				return godirwalk.SkipNode
			},
			Unsorted: true,
		})
		if err != nil {
			// One bad album shouldn't break the entire scan.
			klog.Warningf("error walking directory %s: %v", albumDir, err)
		}
	}
	return paths
}

// isImageFile checks for common image file extensions.
func isImageFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".bmp", ".gif":
		return true
	}
	return false
}
