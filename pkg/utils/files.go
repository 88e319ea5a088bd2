package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/bodgit/sevenzip"
	"github.com/ulikunitz/xz"
)

// ErrEmptyArchive is returned when an archive holds no files.
var ErrEmptyArchive = errors.New("utils: empty archive")

// LoadFile loads the given file and performs decompression if necessary.
// Archives (.zip, .7z) yield their first file.
func LoadFile(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	return Decompress(filepath.Ext(filename), data)
}

// Decompress decodes data according to the given file extension. Data
// with an unknown extension is returned as is.
func Decompress(ext string, data []byte) ([]byte, error) {
	var decoder io.Reader
	var err error
	r := bytes.NewReader(data)

	// try to assert the compression type from the file extension
	switch strings.ToLower(ext) {
	case ".gz":
		decoder, err = gzip.NewReader(r)
	case ".xz":
		decoder, err = xz.NewReader(r)
	case ".br":
		decoder = brotli.NewReader(r)
	case ".zip":
		var zipReader *zip.Reader
		zipReader, err = zip.NewReader(r, int64(len(data)))
		if err != nil {
			break
		}
		if len(zipReader.File) == 0 {
			return nil, ErrEmptyArchive
		}

		// read the first file in the zip file
		decoder, err = zipReader.File[0].Open()
	case ".7z":
		var archive *sevenzip.Reader
		archive, err = sevenzip.NewReader(r, int64(len(data)))
		if err != nil {
			break
		}
		if len(archive.File) == 0 {
			return nil, ErrEmptyArchive
		}

		// read the first file in the archive
		decoder, err = archive.File[0].Open()
	default:
		// return the data as is
		return data, nil
	}

	if err != nil {
		return nil, fmt.Errorf("utils: %s: %w", ext, err)
	}
	if c, ok := decoder.(io.Closer); ok {
		defer c.Close()
	}

	// read the decompressed data into a byte slice
	out, err := io.ReadAll(decoder)
	if err != nil {
		return nil, fmt.Errorf("utils: %s: %w", ext, err)
	}
	return out, nil
}

// SaveFile writes data to the given file, compressing it with brotli
// when the filename ends in .br.
func SaveFile(filename string, data []byte) error {
	if strings.ToLower(filepath.Ext(filename)) == ".br" {
		var buf bytes.Buffer
		w := brotli.NewWriterLevel(&buf, brotli.BestCompression)
		if _, err := w.Write(data); err != nil {
			return err
		}
		if err := w.Close(); err != nil {
			return err
		}
		data = buf.Bytes()
	}

	return os.WriteFile(filename, data, 0644)
}
