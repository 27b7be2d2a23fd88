package botania

import "errors"

var (
	// ErrInvalidBounds reports a field with a negative width or height.
	ErrInvalidBounds = errors.New("botania: invalid field bounds")
	// ErrInvalidCoordinate reports a cell outside [0,width)x[0,height).
	ErrInvalidCoordinate = errors.New("botania: cell outside field")
	// ErrRaggedRows reports a text grid whose rows differ in length.
	ErrRaggedRows = errors.New("botania: grid rows differ in length")
	// ErrInvalidSetting reports a negative game setting in a layout.
	ErrInvalidSetting = errors.New("botania: invalid layout setting")
	// ErrUnknownGlyph reports a character the text format does not define.
	ErrUnknownGlyph = errors.New("botania: unknown grid glyph")
)
