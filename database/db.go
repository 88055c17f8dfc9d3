package database

import (
	"embed"
	"fmt"
	"io/fs"
	"log"
	"os"
)

//go:embed content/*.json
var embedded embed.FS

// ContentFS is the global content source: the JSON files shipped with the
// binary, or a directory on disk when CONTENT_DIR is set.
var ContentFS fs.FS

// Embedded returns the content bundled into the binary.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "content")
	if err != nil {
		// content/ is embedded at build time; Sub only fails on a bad path.
		panic(err)
	}
	return sub
}

// OpenContent returns the content source for dir, falling back to the
// embedded files when dir is empty.
func OpenContent(dir string) (fs.FS, error) {
	if dir == "" {
		return Embedded(), nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("content dir %q: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content dir %q is not a directory", dir)
	}
	return os.DirFS(dir), nil
}

// InitContent sets ContentFS.
func InitContent(dir string) {
	fsys, err := OpenContent(dir)
	if err != nil {
		log.Fatalf("failed to open content: %v", err)
	}
	ContentFS = fsys
	if dir == "" {
		log.Println("Serving embedded content")
	} else {
		log.Printf("Serving content from %s", dir)
	}
}
