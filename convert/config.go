package convert

import (
	"errors"
	"fmt"
)

// Default encode settings applied by the CLI layer when flags are omitted
const (
	DefaultQuality = 75
	DefaultEffort  = 2
)

// Validation errors returned by NewEncodeConfig
var (
	ErrInvalidQuality = errors.New("quality must be between 0 and 100")
	ErrInvalidEffort  = errors.New("effort must be between 0 and 6")
)

// EncodeConfig holds the WebP encode settings shared read-only by every
// worker in a batch. It is immutable after construction, so workers need
// no synchronization around it.
type EncodeConfig struct {
	Quality  int  // 0-100
	Lossless bool // lossless VP8L vs lossy VP8
	Effort   int  // 0-6, trades encode time for output size
	MaxWidth uint // downscale bound in pixels, 0 disables resizing
}

// NewEncodeConfig validates the encode settings and builds a config.
// Out-of-range values fail outright, they are never clamped.
// Quality and effort are still forwarded to the codec in lossless mode,
// where they control the speed/size trade-off.
func NewEncodeConfig(quality int, lossless bool, effort int) (*EncodeConfig, error) {
	if quality < 0 || quality > 100 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidQuality, quality)
	}
	if effort < 0 || effort > 6 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidEffort, effort)
	}

	return &EncodeConfig{
		Quality:  quality,
		Lossless: lossless,
		Effort:   effort,
	}, nil
}

// WithMaxWidth returns a copy of the config that downscales images wider
// than maxWidth pixels before encoding. The receiver is left unchanged.
func (c *EncodeConfig) WithMaxWidth(maxWidth uint) *EncodeConfig {
	cfg := *c
	cfg.MaxWidth = maxWidth
	return &cfg
}
