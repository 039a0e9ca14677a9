// SPDX-License-Identifier: MIT

package batch

import "errors"

// ErrInvalidWorkers is returned by NewPool for a non-positive worker count.
var ErrInvalidWorkers = errors.New("batch: worker count must be positive")
