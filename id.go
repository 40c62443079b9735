// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package accept

import "code.hybscloud.com/atomix"

// ID is a monotonically increasing identifier issued by a Counter.
type ID = uint32

// Counter issues monotonically increasing IDs starting after zero.
// The zero value is ready to use. Safe for concurrent use; never blocks.
type Counter struct {
	n atomix.Uint32
}

// Next atomically increments the counter and returns the new value.
// Values wrap around only at the uint32 bound.
func (c *Counter) Next() ID {
	return c.n.Add(1)
}

// Current returns the most recently issued value, or zero.
func (c *Counter) Current() ID {
	return c.n.Load()
}

// ids is the process-wide counter behind NextID.
var ids Counter

// NextID returns the next value of the process-wide counter.
func NextID() ID {
	return ids.Next()
}
