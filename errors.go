// SPDX-License-Identifier: EPL-2.0

package omnigraph

import "errors"

var (
	ErrUnknownFormat   = errors.New("no decoder registered for format")
	ErrEmptyStream     = errors.New("input decoded to an empty sample stream")
	ErrNothingToRepeat = errors.New("no operation to repeat")
	ErrNothingToSave   = errors.New("no result to save")
)
