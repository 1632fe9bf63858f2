package ffmpeg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBackgroundColor(t *testing.T) {
	assert.Equal(t, "0xF0FFF0", backgroundColor("happy"))
	assert.Equal(t, "0xF0F0FF", backgroundColor("sad"))
	// Any mood other than happy gets the blue tint.
	assert.Equal(t, "0xF0F0FF", backgroundColor("excited"))
}

func TestOverlayXExpr(t *testing.T) {
	assert.Equal(t, "(main_w-overlay_w)*(0.5+0.4*sin(2*PI*t/5.000))", overlayXExpr(5))
}

func TestOverlayXExprFloorsTinyDurations(t *testing.T) {
	assert.Contains(t, overlayXExpr(0), "/0.100)")
	assert.Contains(t, overlayXExpr(0.02), "/0.100)")
}

func TestConcatFilter(t *testing.T) {
	filter := concatFilter(2)

	assert.Contains(t, filter, "[0:v]scale=1280:720:force_original_aspect_ratio=decrease,pad=1280:720:(ow-iw)/2:(oh-ih)/2,setsar=1[v0];")
	assert.Contains(t, filter, "[v0][0:a][v1][1:a]concat")
	assert.True(t, strings.HasSuffix(filter, "concat=n=2:v=1:a=1[outv][outa]"))
}

func TestConcatenateRejectsEmptyInput(t *testing.T) {
	err := NewEditor().Concatenate(nil, "out.mp4")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no clips")
}
