package io

import (
	"slices"

	"github.com/matzehuels/plotkit/pkg/errors"
)

// Validate checks the kind, labels and data shapes of s. Image data is only
// checked for entries that are already loaded.
func Validate(s *Spec) error {
	if !slices.Contains(Kinds, s.Kind) {
		return errors.New(errors.ErrCodeInvalidKind, "unknown figure kind %q", s.Kind)
	}
	for _, l := range []string{s.Title, s.XLabel, s.YLabel} {
		if err := errors.ValidateLabel(l); err != nil {
			return err
		}
	}
	if err := validateLimit("xlim", s.XLim); err != nil {
		return err
	}
	if err := validateLimit("ylim", s.YLim); err != nil {
		return err
	}
	if len(s.SizeIn) != 0 && (len(s.SizeIn) != 2 || s.SizeIn[0] <= 0 || s.SizeIn[1] <= 0) {
		return errors.New(errors.ErrCodeInvalidShape, "size_in must be two positive numbers, got %v", s.SizeIn)
	}
	if s.Bins < 0 {
		return errors.New(errors.ErrCodeInvalidArgument, "bins must not be negative, got %d", s.Bins)
	}

	switch s.Kind {
	case KindHistogram:
		if len(s.Series) == 0 {
			return errors.New(errors.ErrCodeInvalidInput, "histogram needs at least one series")
		}
		for _, se := range s.Series {
			if len(se.Values) == 0 {
				return errors.New(errors.ErrCodeInvalidInput, "series %q has no values", se.Label)
			}
		}
	case KindLines, KindScatter:
		for _, se := range s.Series {
			if err := validateRows(se.Label, se.Points); err != nil {
				return err
			}
		}
	case KindLinesConfidence:
		for _, se := range s.Series {
			if err := validateRows(se.Label, se.Points); err != nil {
				return err
			}
			if err := validateRows(se.Label, se.Error); err != nil {
				return err
			}
			if len(se.Points) != len(se.Error) {
				return errors.New(errors.ErrCodeInvalidShape, "series %q has %d points but %d errors",
					se.Label, len(se.Points), len(se.Error))
			}
		}
	case KindBar, KindSortedBar:
		if len(s.Bars) == 0 {
			return errors.New(errors.ErrCodeInvalidInput, "%s needs at least one bar", s.Kind)
		}
	case KindImage:
		if len(s.Images) != 1 {
			return errors.New(errors.ErrCodeInvalidShape, "image needs exactly one image, got %d", len(s.Images))
		}
	case KindImageGrid:
		if len(s.Images) == 0 {
			return errors.New(errors.ErrCodeInvalidArgument, "image_grid needs at least one image")
		}
	}

	for i, im := range s.Images {
		if im.Path == "" && !im.Loaded() {
			return errors.New(errors.ErrCodeInvalidInput, "image %d has neither a path nor data", i+1)
		}
		if im.Path != "" {
			if err := errors.ValidatePath(im.Path); err != nil {
				return err
			}
		}
		if im.Loaded() {
			if err := im.Validate(); err != nil {
				return err
			}
		}
		if err := errors.ValidateLabel(im.Title); err != nil {
			return err
		}
	}
	return nil
}

func validateLimit(name string, lim []float64) error {
	switch {
	case len(lim) == 0:
		return nil
	case len(lim) != 2:
		return errors.New(errors.ErrCodeInvalidShape, "%s must have two values, got %d", name, len(lim))
	case !(lim[0] < lim[1]):
		return errors.New(errors.ErrCodeInvalidArgument, "%s min (%g) must be below max (%g)", name, lim[0], lim[1])
	}
	return nil
}

func validateRows(label string, rows [][]float64) error {
	for _, r := range rows {
		if len(r) != 2 {
			return errors.New(errors.ErrCodeInvalidShape, "points need to be 2D (series %q)", label)
		}
	}
	return nil
}
