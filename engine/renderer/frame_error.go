package renderer

import "strings"

// FrameErrorKind classifies an error returned while acquiring the next
// presentable surface texture. The classification decides whether a frame is
// skipped, the surface reconfigured, or the render loop terminated.
type FrameErrorKind int

const (
	// FrameErrorUnknown is any acquire failure that does not match a known
	// category. Treated as fatal, since the surface state cannot be reasoned about.
	FrameErrorUnknown FrameErrorKind = iota

	// FrameErrorRecoverable covers a lost or outdated surface. The caller must
	// reconfigure the surface with the last known size and skip the frame.
	FrameErrorRecoverable

	// FrameErrorTimeout is a surface acquire timeout. The frame is skipped with
	// a warning; no reconfiguration is needed.
	FrameErrorTimeout

	// FrameErrorOutOfMemory means the GPU could not allocate the surface
	// texture. Fatal: the render loop must terminate.
	FrameErrorOutOfMemory
)

// ClassifyFrameError maps a surface-acquire error onto a FrameErrorKind.
// wgpu-native reports acquire failures as text, so classification matches on
// the status names the native library emits.
//
// Parameters:
//   - err: the error returned by the surface texture acquire
//
// Returns:
//   - FrameErrorKind: the classification driving the caller's recovery policy
func ClassifyFrameError(err error) FrameErrorKind {
	if err == nil {
		return FrameErrorUnknown
	}
	msg := strings.ToLower(err.Error())
	switch {
	// A lost device is not a surface condition; reconfiguring cannot recover
	// it, so it must fall through to the fatal default.
	case strings.Contains(msg, "outdated"),
		strings.Contains(msg, "lost") && !strings.Contains(msg, "device"):
		return FrameErrorRecoverable
	case strings.Contains(msg, "timeout"), strings.Contains(msg, "timed out"):
		return FrameErrorTimeout
	case strings.Contains(msg, "out of memory"), strings.Contains(msg, "outofmemory"):
		return FrameErrorOutOfMemory
	default:
		return FrameErrorUnknown
	}
}
