package sink

import (
	"path/filepath"
	"slices"
	"strings"

	"gonum.org/v1/plot/vg/draw"

	// Registers every vg backend with draw.
	_ "gonum.org/v1/plot"

	"github.com/matzehuels/plotkit/pkg/errors"
)

// Formats returns the sorted list of output formats.
func Formats() []string {
	return draw.Formats()
}

// ValidateFormat reports an INVALID_FORMAT error for unknown formats.
func ValidateFormat(format string) error {
	if !slices.Contains(Formats(), format) {
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q (want one of %s)",
			format, strings.Join(Formats(), ", "))
	}
	return nil
}

// ValidateFormats checks every format in the list. An empty list is an error.
func ValidateFormats(formats []string) error {
	if len(formats) == 0 {
		return errors.New(errors.ErrCodeInvalidFormat, "no output format given")
	}
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// FormatFromPath returns the format named by the extension of path.
func FormatFromPath(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		return "", errors.New(errors.ErrCodeInvalidFormat, "cannot infer format from %q: no extension", path)
	}
	if err := ValidateFormat(ext); err != nil {
		return "", err
	}
	return ext, nil
}

// ContentType returns the MIME type of an encoded format.
func ContentType(format string) string {
	switch format {
	case "png":
		return "image/png"
	case "jpg", "jpeg":
		return "image/jpeg"
	case "tif", "tiff":
		return "image/tiff"
	case "svg":
		return "image/svg+xml"
	case "pdf":
		return "application/pdf"
	case "eps":
		return "application/postscript"
	case "tex":
		return "application/x-tex"
	default:
		return "application/octet-stream"
	}
}
