package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"

	"k8s.io/klog/v2"

	"github.com/electronjoe/GeoFrame/internal/geocode"
	"github.com/electronjoe/GeoFrame/internal/photo"
)

// ImageMetadata is the per-image entry written to metadata.json.
type ImageMetadata struct {
	// Date is the EXIF capture date (2006-01-02), empty when absent.
	Date string `json:"date,omitempty"`
	// Place is the reverse-geocoded "locality, country", empty when absent.
	Place string `json:"place,omitempty"`
}

func main() {
	klog.InitFlags(nil)
	rootDir := flag.String("root", "", "Root directory containing sub-directories with images")
	endpoint := flag.String("endpoint", "", "Reverse-geocoding endpoint (defaults to Nominatim)")
	flag.Parse()

	if *rootDir == "" {
		klog.Exit("Please provide a root directory using the -root flag")
	}

	extractor := &photo.Extractor{
		Geocoder: geocode.New(*endpoint, "", 0),
	}
	cache := photo.NewCache()

	// List entries in the root directory.
	entries, err := os.ReadDir(*rootDir)
	if err != nil {
		klog.Exitf("Failed to read root directory: %v", err)
	}

	// Process each sub-directory.
	for _, entry := range entries {
		if entry.IsDir() {
			subDirPath := filepath.Join(*rootDir, entry.Name())
			klog.Infof("Processing sub-directory: %s", subDirPath)
			processSubDir(subDirPath, extractor, cache)
		}
	}
}

// processSubDir runs the extraction pipeline over one sub-directory and
// writes a metadata.json mapping image filenames to their metadata.
func processSubDir(dir string, extractor *photo.Extractor, cache *photo.Cache) {
	metadataMap := make(map[string]ImageMetadata)

	for _, path := range photo.Discover([]string{dir}) {
		rec := cache.GetOrCompute(context.Background(), path, extractor.Extract)

		meta := ImageMetadata{Place: rec.Place}
		if !rec.TakenTime.IsZero() {
			meta.Date = rec.TakenTime.Format("2006-01-02")
		}
		if meta == (ImageMetadata{}) {
			klog.Infof("No metadata for %s", path)
			continue
		}
		metadataMap[filepath.Base(path)] = meta
	}

	// Write the metadata map as JSON into metadata.json in the sub-directory.
	jsonPath := filepath.Join(dir, "metadata.json")
	jsonData, err := json.MarshalIndent(metadataMap, "", "  ")
	if err != nil {
		klog.Errorf("Failed to marshal JSON for directory %s: %v", dir, err)
		return
	}
	if err := os.WriteFile(jsonPath, jsonData, 0o644); err != nil {
		klog.Errorf("Failed to write JSON file %s: %v", jsonPath, err)
		return
	}

	klog.Infof("Wrote metadata file: %s", jsonPath)
}
