// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package accept

// SetCounter moves c to v, so the next issued value is v+1.
func SetCounter(c *Counter, v ID) {
	c.n.Store(v)
}
