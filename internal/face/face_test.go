package face

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderToImage(t *testing.T, mood string) image.Image {
	t.Helper()

	path := filepath.Join(t.TempDir(), "avatar.png")
	require.NoError(t, NewRenderer().Render(mood, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	return img
}

// channel8 scales a 16-bit color channel down to its 8-bit value.
func channel8(v uint32) uint32 {
	return v >> 8
}

func TestRenderHappyAvatar(t *testing.T) {
	img := renderToImage(t, "happy")

	bounds := img.Bounds()
	assert.Equal(t, DefaultSize, bounds.Dx())
	assert.Equal(t, DefaultSize, bounds.Dy())

	// The upturned mouth passes through its arc apex at (200, 200).
	r, _, _, a := img.At(200, 200).RGBA()
	assert.Less(t, channel8(r), uint32(100), "mouth stroke should darken the arc apex")
	assert.NotZero(t, a)

	// Where a sad mouth would dip, a happy face is plain skin.
	r, _, _, _ = img.At(200, 340).RGBA()
	assert.Greater(t, channel8(r), uint32(200))
}

func TestRenderSadAvatar(t *testing.T) {
	img := renderToImage(t, "sad")

	r, _, _, _ := img.At(200, 340).RGBA()
	assert.Less(t, channel8(r), uint32(100), "downturned mouth should dip below the face midline")

	r, _, _, _ = img.At(200, 200).RGBA()
	assert.Greater(t, channel8(r), uint32(200))
}

func TestRenderUnknownMoodUsesHappyMouth(t *testing.T) {
	img := renderToImage(t, "excited")

	r, _, _, _ := img.At(200, 200).RGBA()
	assert.Less(t, channel8(r), uint32(100))
}

func TestRenderBackgroundTransparent(t *testing.T) {
	img := renderToImage(t, "happy")

	_, _, _, a := img.At(5, 5).RGBA()
	assert.Zero(t, a)
}

func TestRenderEyesFilled(t *testing.T) {
	img := renderToImage(t, "happy")

	for _, x := range []int{140, 260} {
		r, _, _, _ := img.At(x, 160).RGBA()
		assert.Less(t, channel8(r), uint32(50))
	}
}
