// SPDX-License-Identifier: MIT

package layout

import "errors"

var (
	// ErrLevelNotFound indicates a level name the layout does not have.
	ErrLevelNotFound = errors.New("layout: level not found")

	// ErrInvalidConfig indicates a rule set that fails validation.
	ErrInvalidConfig = errors.New("layout: invalid config")

	// ErrNotOwned indicates a coordinate outside the sites selected by a memory layout.
	ErrNotOwned = errors.New("layout: coordinate not in memory layout")
)
