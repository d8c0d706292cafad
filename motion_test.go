package animcurve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveMotion(t *testing.T) {
	tests := []struct {
		name   string
		opts   RenderOptions
		want   MotionWindow
		wantOK bool
	}{
		{
			name: "no frame",
			opts: RenderOptions{HasMotionWindow: true, MotionStart: 0, MotionEnd: 1},
		},
		{
			name:   "frame only",
			opts:   RenderOptions{HasFrame: true, Frame: 12},
			want:   MotionWindow{Frame: 12, Start: 12, End: 12, Steps: 1},
			wantOK: true,
		},
		{
			name:   "frame inside window",
			opts:   RenderOptions{HasFrame: true, Frame: 12, HasMotionWindow: true, MotionStart: 11.5, MotionEnd: 12.5},
			want:   MotionWindow{Frame: 12, Start: 11.5, End: 12.5, Steps: 3},
			wantOK: true,
		},
		{
			name:   "frame on window start",
			opts:   RenderOptions{HasFrame: true, Frame: 12, HasMotionWindow: true, MotionStart: 12, MotionEnd: 12.5},
			want:   MotionWindow{Frame: 12, Start: 12, End: 12.5, Steps: 2},
			wantOK: true,
		},
		{
			name: "relative window",
			opts: RenderOptions{
				HasFrame: true, Frame: 12,
				HasMotionWindow: true, MotionStart: -0.25, MotionEnd: 0.25,
				RelativeMotionFrame: true,
			},
			want:   MotionWindow{Frame: 12, Start: 11.75, End: 12.25, Steps: 3},
			wantOK: true,
		},
		{
			name:   "frame outside window collapses",
			opts:   RenderOptions{HasFrame: true, Frame: 20, HasMotionWindow: true, MotionStart: 11, MotionEnd: 13},
			want:   MotionWindow{Frame: 20, Start: 20, End: 20, Steps: 1},
			wantOK: true,
		},
		{
			name:   "inverted window collapses",
			opts:   RenderOptions{HasFrame: true, Frame: 12, HasMotionWindow: true, MotionStart: 13, MotionEnd: 11},
			want:   MotionWindow{Frame: 12, Start: 12, End: 12, Steps: 1},
			wantOK: true,
		},
		{
			name: "explicit steps override",
			opts: RenderOptions{
				HasFrame: true, Frame: 12,
				HasMotionWindow: true, MotionStart: 11, MotionEnd: 13,
				HasMotionSteps: true, MotionSteps: 9,
			},
			want:   MotionWindow{Frame: 12, Start: 11, End: 13, Steps: 9},
			wantOK: true,
		},
		{
			name: "non-positive steps keep default",
			opts: RenderOptions{
				HasFrame: true, Frame: 11,
				HasMotionWindow: true, MotionStart: 11, MotionEnd: 13,
				HasMotionSteps: true, MotionSteps: 0,
			},
			want:   MotionWindow{Frame: 11, Start: 11, End: 13, Steps: 2},
			wantOK: true,
		},
		{
			name: "steps are clamped",
			opts: RenderOptions{
				HasFrame: true, Frame: 12,
				HasMotionWindow: true, MotionStart: 11, MotionEnd: 13,
				HasMotionSteps: true, MotionSteps: 4096,
			},
			want:   MotionWindow{Frame: 12, Start: 11, End: 13, Steps: MaxMotionSteps},
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveMotion(tt.opts)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
