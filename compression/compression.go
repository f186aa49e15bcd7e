// Package compression wraps the zlib stream that carries PNG image data.
package compression

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/zlib"
)

// Compression levels accepted by DeflateData.
const (
	NoCompression      = zlib.NoCompression
	BestSpeed          = zlib.BestSpeed
	BestCompression    = zlib.BestCompression
	DefaultCompression = zlib.DefaultCompression
	HuffmanOnly        = zlib.HuffmanOnly
)

var writerPool = sync.Pool{
	New: func() any {
		return zlib.NewWriter(nil)
	},
}

// InflateData decompresses a complete zlib stream.
func InflateData(compressedData []byte) ([]byte, error) {
	return InflateDataLimit(compressedData, -1)
}

// InflateDataLimit is like InflateData but stops after limit bytes of
// output. A negative limit means no limit. Reading stops early, so the
// stream checksum is not verified when the limit is reached.
func InflateDataLimit(compressedData []byte, limit int64) ([]byte, error) {
	reader := bytes.NewReader(compressedData)

	zlibReader, err := zlib.NewReader(reader)
	if err != nil {
		return nil, err
	}
	defer zlibReader.Close()

	var src io.Reader = zlibReader
	if limit >= 0 {
		src = io.LimitReader(zlibReader, limit)
	}
	var decompressedData bytes.Buffer
	_, err = io.Copy(&decompressedData, src)
	if err != nil {
		return nil, err
	}
	return decompressedData.Bytes(), nil
}

// DeflateData compresses data into a zlib stream at the given level.
// Writers for the default level are pooled.
func DeflateData(data []byte, level int) ([]byte, error) {
	var buf bytes.Buffer

	var w *zlib.Writer
	if level == DefaultCompression {
		w = writerPool.Get().(*zlib.Writer)
		w.Reset(&buf)
		defer writerPool.Put(w)
	} else {
		var err error
		w, err = zlib.NewWriterLevel(&buf, level)
		if err != nil {
			return nil, fmt.Errorf("compression level %d: %w", level, err)
		}
	}

	if _, err := w.Write(data); err != nil {
		w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
