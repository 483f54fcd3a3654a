// SPDX-License-Identifier: EPL-2.0

package audmix

import "errors"

var (
	ErrEmptySample    = errors.New("sample has no audio")
	ErrInvalidOptions = errors.New("invalid load options")
)
