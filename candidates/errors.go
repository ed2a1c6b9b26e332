// SPDX-License-Identifier: MIT

package candidates

import "errors"

var (
	// ErrUnknownCategory is returned when an annotation names a category id
	// that the dataset does not declare.
	ErrUnknownCategory = errors.New("candidates: unknown category")

	// ErrDecode wraps JSON decoding failures of datasets and hierarchies.
	ErrDecode = errors.New("candidates: decode failed")
)
