// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package accept provides composable side-effecting callbacks ("consumers")
// over one to four arguments, in infallible and error-returning forms.
//
// A consumer is a plain func type, so any func literal of the right shape
// is one. Composition builds new consumers out of existing ones and runs
// the constituents synchronously, in the stated order, exactly once each.
//
// # Forms
//
//   - Infallible: [Consumer], [Consumer2], [Consumer3], [Consumer4].
//   - Fallible: [ConsumerEx], [ConsumerEx2], [ConsumerEx3], [ConsumerEx4]. A non-nil error aborts the composition.
//   - Slices: [Each] and [EachEx] lift a consumer over []T. Nest them for [][]T and [][][]T.
//
// # Composition
//
//   - Sequencing: Then, Before, and the variadic [Sequence], [SequenceEx] (one per arity).
//   - Error conversion: Handled routes the error to a handler, OnException runs a fallback
//     with the same arguments, Unchecked panics. Each returns the infallible form.
//   - Handlers: [Ignore], [Collect], and [LogError] on [go.uber.org/zap].
//
// # Integration
//
//   - Effects: [ConsumerEx.Try] reports a call as [code.hybscloud.com/kont.Either]; [ConsumerEx.Perform]
//     defers it into a kont computation whose errors are kont error effects.
//   - Deferred delivery: [Buffer] queues values on a lock-free SPSC queue from [code.hybscloud.com/lfq]
//     and reports backpressure as [code.hybscloud.com/iox.ErrWouldBlock].
//   - IDs: [Counter] and [NextID] issue monotonically increasing IDs on [code.hybscloud.com/atomix].
//
// # Example
//
//	var errs []error
//	store := accept.OfEx(func(n int) error { return db.Put(n) })
//	audit := accept.Of(func(n int) { log.Printf("stored %d", n) })
//	pipeline := store.Handled(accept.Collect(&errs)).Then(audit)
//	accept.Each(pipeline)([]int{1, 2, 3})
package accept
