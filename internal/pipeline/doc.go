// SPDX-License-Identifier: MPL-2.0

// Package pipeline carries data between pipeline stages.
//
// PipelineData owns exactly one of three shapes: an eager value, a lazy
// pull-based stream of values, or the captured output of an external
// command. A stage consumes its input exactly once (streams are not
// rewindable) and hands the next stage a PipelineData of mirroring shape.
//
// The scheduling model is single-threaded and pull-based: a lazy stream is
// driven by whoever asks for its next item, and the per-item function in
// Map runs to completion between pulls. The only genuine concurrency is
// the external command writing its output, which this package consumes as
// opaque I/O.
//
// Cancellation is cooperative. A single Interrupt flag, set by the host on
// Ctrl-C, is polled between items; when it fires, streams simply end early
// with no error. Nothing preempts a per-item function mid-flight.
package pipeline
