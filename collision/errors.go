// SPDX-License-Identifier: GPL-2.0-or-later

package collision

import (
	"github.com/pkg/errors"
)

// MaxSlideSteps bounds the steps of a single Slide. Each step crosses one
// grid plane or reports one collision, so a legal sweep needs about as many
// steps as cells along its path. Reaching the bound means the sweep made no
// progress, such as a NaN velocity or a grid reporting wrong empty regions.
const MaxSlideSteps = 100000

// maxSlideSteps is the bound in use. Tests lower it.
var maxSlideSteps = MaxSlideSteps

// ErrSlideLimit is the panic value, wrapped with a stack, raised when a
// Slide exceeds MaxSlideSteps.
var ErrSlideLimit = errors.New("collision: slide exceeded step limit")
