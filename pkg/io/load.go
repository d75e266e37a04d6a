package io

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	// Decoders for the image formats a spec may reference.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/matzehuels/plotkit/pkg/errors"
	"github.com/matzehuels/plotkit/pkg/render/images"
)

// LoadImages decodes every image entry that has a path but no data,
// resolving paths against baseDir.
func LoadImages(s *Spec, baseDir string) error {
	for i := range s.Images {
		im := &s.Images[i]
		if im.Path == "" || im.Loaded() {
			continue
		}
		if err := errors.ValidatePath(im.Path); err != nil {
			return err
		}
		t, err := decodeImage(filepath.Join(baseDir, filepath.FromSlash(im.Path)))
		if err != nil {
			return err
		}
		im.Tensor = t
	}
	return nil
}

// RequireInline rejects image entries given by path. It guards inputs
// that must not reach the file system.
func RequireInline(s *Spec) error {
	for i, im := range s.Images {
		if im.Path != "" {
			return errors.New(errors.ErrCodeInvalidPath, "image %d: paths are not allowed here, send inline data", i+1)
		}
	}
	return nil
}

func decodeImage(path string) (images.Tensor, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return images.Tensor{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "image %s not found", path)
		}
		return images.Tensor{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return images.Tensor{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode image %s", path)
	}
	return images.FromImage(img), nil
}
