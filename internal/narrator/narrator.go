// Package narrator turns scene text into speech audio files.
package narrator

import (
	"fmt"
	"path/filepath"
	"strings"

	htgotts "github.com/hegedustibor/htgo-tts"
)

// Narrator synthesizes narration through the Google Translate TTS endpoint.
// Every call blocks on the network with no retry and no timeout; failures
// surface to the caller.
type Narrator struct {
	Language string
}

// New returns a Narrator speaking the given language code, e.g. "hi".
func New(language string) *Narrator {
	return &Narrator{Language: language}
}

// Synthesize fetches speech audio for text and writes it to outputPath,
// which must end in ".mp3".
func (n *Narrator) Synthesize(text, outputPath string) error {
	folder, name := splitSpeechPath(outputPath)
	speech := htgotts.Speech{Folder: folder, Language: n.Language}
	if _, err := speech.CreateSpeechFile(text, name); err != nil {
		return fmt.Errorf("synthesizing narration: %w", err)
	}
	return nil
}

// splitSpeechPath splits outputPath into the folder and base name the speech
// library expects; the library appends the ".mp3" extension itself.
func splitSpeechPath(outputPath string) (folder, name string) {
	folder = filepath.Dir(outputPath)
	name = strings.TrimSuffix(filepath.Base(outputPath), ".mp3")
	return folder, name
}
