// Package options provides shared validation helpers for the functional
// option layers of the public packages.
package options

import "errors"

// ValidateSingleInputSource checks that exactly one input source flag is
// set. noneMsg is returned when no source is set, multipleMsg when more
// than one is.
func ValidateSingleInputSource(noneMsg, multipleMsg string, sources ...bool) error {
	count := 0
	for _, set := range sources {
		if set {
			count++
		}
	}
	switch {
	case count == 0:
		return errors.New(noneMsg)
	case count > 1:
		return errors.New(multipleMsg)
	}
	return nil
}
