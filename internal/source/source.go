// Package source reads slide documents from disk.
package source

import (
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
)

// MaxSize caps the document size read into memory.
const MaxSize = 8 << 20

// ErrRead marks every failure to read a document. Underlying causes such as
// fs.ErrNotExist remain matchable with errors.Is.
var ErrRead = errors.New("cannot read document")

// Document is a slide document read fully into memory.
type Document struct {
	Path string // Path as given by the caller
	Text string
}

// Name returns the document's base file name.
func (d Document) Name() string {
	return filepath.Base(d.Path)
}

// Load reads the document at path. A missing file, a directory, an
// oversized file, or invalid UTF-8 all fail with ErrRead.
func Load(path string) (Document, error) {
	if path == "" {
		return Document{}, errors.WithHint(errors.Mark(errors.New("no document path given"), ErrRead),
			"pass the presentation file as an argument")
	}

	info, err := os.Stat(path)
	if err != nil {
		return Document{}, wrap(err, path)
	}
	if info.IsDir() {
		return Document{}, errors.Mark(errors.Newf("%s is a directory", path), ErrRead)
	}
	if info.Size() > MaxSize {
		return Document{}, errors.Mark(errors.Newf("%s is %d bytes (max %d)", path, info.Size(), MaxSize), ErrRead)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return Document{}, wrap(err, path)
	}
	if !utf8.Valid(b) {
		return Document{}, errors.Mark(errors.Newf("%s is not valid UTF-8 text", path), ErrRead)
	}
	return Document{Path: path, Text: string(b)}, nil
}

func wrap(err error, path string) error {
	err = errors.Mark(errors.Wrapf(err, "reading %s", path), ErrRead)
	if errors.Is(err, fs.ErrNotExist) {
		return errors.WithHint(err, "check the path of the presentation file")
	}
	if errors.Is(err, fs.ErrPermission) {
		return errors.WithHint(err, "check the file permissions")
	}
	return err
}
