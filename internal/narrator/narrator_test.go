package narrator

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitSpeechPath(t *testing.T) {
	folder, name := splitSpeechPath(filepath.Join("videos", "scene_f3a1_0.mp3"))
	assert.Equal(t, "videos", folder)
	assert.Equal(t, "scene_f3a1_0", name)
}

func TestSplitSpeechPathWithoutExtension(t *testing.T) {
	folder, name := splitSpeechPath(filepath.Join("videos", "narration"))
	assert.Equal(t, "videos", folder)
	assert.Equal(t, "narration", name)
}

func TestNewKeepsLanguage(t *testing.T) {
	assert.Equal(t, "hi", New("hi").Language)
}
