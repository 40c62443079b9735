// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package accept_test

import "testing"

// skipRace skips Buffer tests under the race detector. Offer and Put
// publish values through lfq's SPSC ring, whose ordering comes from
// atomic index updates the detector does not pair with the slot writes.
func skipRace(tb testing.TB) {
	tb.Helper()
	tb.Skip("skip: Buffer ordering is not visible to the race detector")
}
