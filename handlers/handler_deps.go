package handlers

import (
	"time"

	"github.com/sirupsen/logrus"
	supa "github.com/supabase-community/supabase-go"
)

// FaceRenderer produces the shared avatar image for a generation request.
// This allows for decoupling and easier testing; the concrete implementation
// lives in the face package.
type FaceRenderer interface {
	Render(mood, outputPath string) error
}

// SpeechSynthesizer narrates one scene's text into an audio file.
type SpeechSynthesizer interface {
	Synthesize(text, outputPath string) error
}

// VideoEditor defines the ffmpeg operations the generation pipeline needs.
type VideoEditor interface {
	GetAudioDuration(filePath string) (time.Duration, error)
	ComposeScene(avatarPath, audioPath, outputPath string, duration float64, mood string) error
	Concatenate(clipPaths []string, outputPath string) error
}

// ApplicationHandler holds shared dependencies for handlers. OutputDir is the
// asset store directory, created at startup and never changed afterwards. DB
// is the optional Supabase client used only by the datastore diagnostic.
type ApplicationHandler struct {
	Face      FaceRenderer
	Narrator  SpeechSynthesizer
	Editor    VideoEditor
	Logger    *logrus.Logger
	DB        *supa.Client
	OutputDir string
}

// NewApplicationHandler creates a new ApplicationHandler with the given
// dependencies.
func NewApplicationHandler(face FaceRenderer, narrator SpeechSynthesizer, editor VideoEditor, logger *logrus.Logger, dbClient *supa.Client, outputDir string) *ApplicationHandler {
	return &ApplicationHandler{
		Face:      face,
		Narrator:  narrator,
		Editor:    editor,
		Logger:    logger,
		DB:        dbClient,
		OutputDir: outputDir,
	}
}
