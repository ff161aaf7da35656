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

// StaticDir is where the server serves /static from
var StaticDir = "static"

// versionedAssets are hashed once at startup for cache busting
var versionedAssets = []string{
	"css/site.css",
	"js/app.js",
	"images/favicon.png",
}

var (
	assetVersions     = map[string]string{}
	assetVersionsMu   sync.RWMutex
	assetVersionsOnce sync.Once
)

// InitAssetVersions computes file hashes for cache busting at startup
func InitAssetVersions() {
	assetVersionsOnce.Do(func() {
		versions := make(map[string]string, len(versionedAssets))
		for _, asset := range versionedAssets {
			if v := computeFileHash(filepath.Join(StaticDir, asset)); v != "" {
				versions[asset] = v
			}
		}

		assetVersionsMu.Lock()
		assetVersions = versions
		assetVersionsMu.Unlock()
		log.Printf("[INFO] Asset versions initialized: %d files", len(versions))
	})
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

// AssetVersion returns the version hash for a static asset, "1" when unknown
func AssetVersion(path string) string {
	assetVersionsMu.RLock()
	defer assetVersionsMu.RUnlock()
	if v, ok := assetVersions[path]; ok {
		return v
	}
	return "1"
}

// AssetURL returns the public URL of a static asset with its version query
func AssetURL(path string) string {
	return "/static/" + path + "?v=" + AssetVersion(path)
}
