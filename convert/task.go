package convert

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	// Register decoders for the supported input formats. The webp import
	// also provides the encoder used below.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/deepteams/webp"
	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// FailureKind classifies which pipeline stage a conversion failed in.
type FailureKind int

const (
	FailureNone FailureKind = iota
	FailureDecode
	FailureEncode
	FailureWrite
)

func (k FailureKind) String() string {
	switch k {
	case FailureDecode:
		return "decode"
	case FailureEncode:
		return "encode"
	case FailureWrite:
		return "write"
	}
	return "none"
}

// ConversionTask is one file's conversion request, the unit of work
// dispatched to the pool. The config is shared across tasks.
type ConversionTask struct {
	SourcePath string
	Config     *EncodeConfig
}

// ConversionResult holds the outcome of a single conversion. Err is nil on
// success; on failure Kind tells which stage failed. Results are never
// mutated after creation.
type ConversionResult struct {
	SourcePath   string
	OutputPath   string
	BytesWritten int64
	Kind         FailureKind
	Err          error
}

// Succeeded reports whether the output file was written.
func (r ConversionResult) Succeeded() bool {
	return r.Err == nil
}

// OutputPathFor returns the path a converted file is written to: the source
// path with its extension replaced by .webp, in the same directory. An
// existing file at that path is overwritten (last write wins).
func OutputPathFor(source string) string {
	ext := filepath.Ext(source)
	return strings.TrimSuffix(source, ext) + ".webp"
}

// Execute runs a single conversion: decode, optional downscale, WebP
// encode, write. Every failure is captured in the returned result rather
// than propagated, so one bad file cannot take down a batch. Execute has
// no shared mutable state and is safe to call from any number of workers.
func Execute(task ConversionTask) ConversionResult {
	result := ConversionResult{SourcePath: task.SourcePath}

	f, err := os.Open(task.SourcePath)
	if err != nil {
		result.Kind = FailureDecode
		result.Err = fmt.Errorf("failed to open %s: %w", task.SourcePath, err)
		return result
	}
	img, _, err := image.Decode(f)
	f.Close()
	if err != nil {
		result.Kind = FailureDecode
		result.Err = fmt.Errorf("failed to decode %s: %w", task.SourcePath, err)
		return result
	}

	if maxWidth := task.Config.MaxWidth; maxWidth > 0 && img.Bounds().Dx() > int(maxWidth) {
		img = resize.Resize(maxWidth, 0, img, resize.Lanczos3)
	}

	opts := webp.DefaultOptions()
	opts.Lossless = task.Config.Lossless
	opts.Quality = float32(task.Config.Quality)
	opts.Method = task.Config.Effort

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, opts); err != nil {
		result.Kind = FailureEncode
		result.Err = fmt.Errorf("failed to encode %s: %w", task.SourcePath, err)
		return result
	}

	outputPath := OutputPathFor(task.SourcePath)
	if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
		result.Kind = FailureWrite
		result.Err = fmt.Errorf("failed to write %s: %w", outputPath, err)
		return result
	}

	result.OutputPath = outputPath
	result.BytesWritten = int64(buf.Len())
	return result
}
