package renderer

import (
	"errors"
	"testing"
)

func TestClassifyFrameError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want FrameErrorKind
	}{
		{name: "nil error", err: nil, want: FrameErrorUnknown},
		{name: "surface lost", err: errors.New("Surface image is Lost"), want: FrameErrorRecoverable},
		{name: "surface outdated", err: errors.New("surface texture is Outdated"), want: FrameErrorRecoverable},
		{name: "bare lost status", err: errors.New("Lost"), want: FrameErrorRecoverable},
		{name: "device lost is fatal", err: errors.New("Device Lost"), want: FrameErrorUnknown},
		{name: "device lost sentence", err: errors.New("the device was lost during submission"), want: FrameErrorUnknown},
		{name: "acquire timeout", err: errors.New("surface acquire Timeout"), want: FrameErrorTimeout},
		{name: "timed out spelling", err: errors.New("acquire timed out"), want: FrameErrorTimeout},
		{name: "out of memory", err: errors.New("Out of Memory acquiring texture"), want: FrameErrorOutOfMemory},
		{name: "compact OOM spelling", err: errors.New("status OutOfMemory"), want: FrameErrorOutOfMemory},
		{name: "anything else", err: errors.New("device validation failure"), want: FrameErrorUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyFrameError(tt.err); got != tt.want {
				t.Errorf("ClassifyFrameError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
