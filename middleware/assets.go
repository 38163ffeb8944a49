package middleware

import (
	"crypto/md5"
	"encoding/hex"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// StaticAssets are the files the layout links with a cache-busting version
var StaticAssets = []string{
	"css/site.css",
	"js/site.js",
	"images/favicon.svg",
}

var (
	assetVersions   = map[string]string{}
	assetVersionsMu sync.RWMutex
)

// InitAssetVersions hashes each static asset under dir at startup
func InitAssetVersions(dir string) {
	versions := make(map[string]string, len(StaticAssets))
	for _, asset := range StaticAssets {
		if version := computeFileHash(filepath.Join(dir, filepath.FromSlash(asset))); version != "" {
			versions[asset] = version
		}
	}

	assetVersionsMu.Lock()
	assetVersions = versions
	assetVersionsMu.Unlock()

	log.Printf("[INFO] Asset versions initialized: %d files", len(versions))
}

// computeFileHash returns the first 8 characters of the MD5 hash of a file
func computeFileHash(path string) string {
	file, err := os.Open(path)
	if err != nil {
		log.Printf("[WARNING] Failed to open file for hashing %s: %v", path, err)
		return ""
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		log.Printf("[WARNING] Failed to hash file %s: %v", path, err)
		return ""
	}

	return hex.EncodeToString(hash.Sum(nil))[:8]
}

// AssetURL returns /static/<asset>?v=<hash>, with version "1" for unknown assets
func AssetURL(asset string) string {
	assetVersionsMu.RLock()
	version, ok := assetVersions[asset]
	assetVersionsMu.RUnlock()
	if !ok {
		version = "1"
	}
	return "/static/" + asset + "?v=" + version
}
