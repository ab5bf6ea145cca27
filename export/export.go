// Package export writes captured spectrogram history to files. Rows come
// in newest first from the history buffer and are written oldest first so
// the output reads in playback order.
package export

import (
	"encoding/csv"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/spectralab/sgram/logging"
)

// WriteCSV writes the rows to w as comma-separated dB values with six
// decimal places, one history row per line, oldest first.
func WriteCSV(w io.Writer, rows [][]float32) error {
	cw := csv.NewWriter(w)

	record := make([]string, 0, 64)
	for i := len(rows) - 1; i >= 0; i-- {
		record = record[:0]
		for _, v := range rows[i] {
			record = append(record, fmt.Sprintf("%.6f", v))
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing csv record: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}

// SaveCSV writes the rows to the named file, creating parent directories
// as needed.
func SaveCSV(path string, rows [][]float32) error {
	f, err := createFile(path)
	if err != nil {
		return err
	}

	if err := WriteCSV(f, rows); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}

	logging.Info("exported spectrogram csv", logging.Fields{
		"path": path,
		"rows": len(rows),
	})
	return nil
}

// PNGConfig maps dB values onto the grayscale ramp. Values at or below
// Floor render black, values at or above Ceiling render white.
type PNGConfig struct {
	Floor   float32
	Ceiling float32
}

// DefaultPNGConfig matches the pipeline's default dB clamp floor.
func DefaultPNGConfig() PNGConfig {
	return PNGConfig{Floor: -80, Ceiling: 0}
}

// WritePNG renders the rows as a grayscale image, one image row per
// history row with the oldest at the top, and encodes it to w. Rows
// captured at different zoom levels may differ in width; short rows are
// padded with the floor color.
func WritePNG(w io.Writer, rows [][]float32, cfg PNGConfig) error {
	if len(rows) == 0 {
		return fmt.Errorf("no rows to export")
	}
	if cfg.Ceiling <= cfg.Floor {
		cfg = DefaultPNGConfig()
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	if width == 0 {
		return fmt.Errorf("no rows to export")
	}

	img := image.NewGray(image.Rect(0, 0, width, len(rows)))
	span := cfg.Ceiling - cfg.Floor
	for y := range rows {
		row := rows[len(rows)-1-y]
		for x := 0; x < width; x++ {
			var shade uint8
			if x < len(row) {
				t := (row[x] - cfg.Floor) / span
				if t < 0 {
					t = 0
				}
				if t > 1 {
					t = 1
				}
				shade = uint8(t * 255)
			}
			img.SetGray(x, y, color.Gray{Y: shade})
		}
	}

	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

// SavePNG renders the rows to the named file, creating parent directories
// as needed.
func SavePNG(path string, rows [][]float32, cfg PNGConfig) error {
	f, err := createFile(path)
	if err != nil {
		return err
	}

	if err := WritePNG(f, rows, cfg); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}

	logging.Info("exported spectrogram png", logging.Fields{
		"path": path,
		"rows": len(rows),
	})
	return nil
}

func createFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating export directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}
	return f, nil
}
