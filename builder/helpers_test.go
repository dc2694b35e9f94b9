// SPDX-License-Identifier: MIT

package builder_test

import "math"

func nanValue() float64 { return math.NaN() }
