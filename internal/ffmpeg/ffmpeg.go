// Package ffmpeg wraps the ffmpeg and ffprobe binaries for scene composition
// and final video assembly.
package ffmpeg

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

const (
	canvasWidth  = 1280
	canvasHeight = 720
	frameRate    = 24
	avatarHeight = 400

	// minOscillationPeriod floors the sine period so a near-zero clip
	// duration cannot divide by zero inside the overlay expression.
	minOscillationPeriod = 0.1
)

// FFProbeOutput defines the structure for ffprobe JSON output relevant to
// duration. Only the format.duration field matters here.
type FFProbeOutput struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

// Editor runs ffmpeg and ffprobe on local files. The zero value is ready to
// use; commands inherit no request context, so in-flight work always runs to
// completion.
type Editor struct{}

// NewEditor returns a new Editor.
func NewEditor() *Editor {
	return &Editor{}
}

// GetAudioDuration uses ffprobe to get the duration of a media file.
// It returns the duration as a time.Duration and an error if any occurs.
func (e *Editor) GetAudioDuration(filePath string) (time.Duration, error) {
	// ffprobe -v quiet -print_format json -show_format <input_file>
	cmd := exec.Command("ffprobe",
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		filePath,
	)

	var out bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return 0, fmt.Errorf("ffprobe failed: %v\nStderr: %s", err, stderr.String())
	}

	var ffprobeOutput FFProbeOutput
	if err := json.Unmarshal(out.Bytes(), &ffprobeOutput); err != nil {
		return 0, fmt.Errorf("error unmarshalling ffprobe output: %v\nOutput: %s", err, out.String())
	}

	if ffprobeOutput.Format.Duration == "" {
		return 0, fmt.Errorf("could not retrieve duration from ffprobe output\nOutput: %s", out.String())
	}

	durationFloat, err := strconv.ParseFloat(ffprobeOutput.Format.Duration, 64)
	if err != nil {
		return 0, fmt.Errorf("error parsing duration string '%s': %v", ffprobeOutput.Format.Duration, err)
	}

	return time.Duration(durationFloat * float64(time.Second)), nil
}

// ComposeScene renders one scene clip: a mood-tinted 1280x720 background
// lasting duration seconds, the avatar scaled to a fixed height and sliding
// along a horizontal sine path, and the narration attached as the audio
// track.
func (e *Editor) ComposeScene(avatarPath, audioPath, outputPath string, duration float64, mood string) error {
	durationSeconds := fmt.Sprintf("%.3f", duration)
	background := fmt.Sprintf("color=c=%s:size=%dx%d:rate=%d:duration=%s",
		backgroundColor(mood), canvasWidth, canvasHeight, frameRate, durationSeconds)
	filter := fmt.Sprintf("[1:v]scale=-1:%d[avatar];[0:v][avatar]overlay=x='%s':y=main_h*0.35[outv]",
		avatarHeight, overlayXExpr(duration))

	cmd := exec.Command("ffmpeg",
		"-y", // Overwrite output file if it exists
		"-f", "lavfi",
		"-i", background,
		"-i", avatarPath,
		"-i", audioPath,
		"-filter_complex", filter,
		"-map", "[outv]",
		"-map", "2:a",
		"-c:v", "libx264",
		"-c:a", "aac",
		"-pix_fmt", "yuv420p",
		"-r", strconv.Itoa(frameRate),
		"-t", durationSeconds,
		outputPath,
	)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ffmpeg scene composition failed: %v\nStderr: %s", err, stderr.String())
	}

	log.Printf("Successfully composed %ss scene clip '%s' (mood: %s)", durationSeconds, outputPath, mood)
	return nil
}

// Concatenate joins the clips in order into one H.264/AAC file at outputPath,
// normalizing every input onto the shared canvas first so clips with
// differing properties still compose. Either the whole file is produced or an
// error is returned.
func (e *Editor) Concatenate(clipPaths []string, outputPath string) error {
	if len(clipPaths) == 0 {
		return fmt.Errorf("no clips to concatenate")
	}

	args := []string{"-y"}
	for _, clip := range clipPaths {
		args = append(args, "-i", clip)
	}
	args = append(args,
		"-filter_complex", concatFilter(len(clipPaths)),
		"-map", "[outv]",
		"-map", "[outa]",
		"-c:v", "libx264",
		"-c:a", "aac",
		"-pix_fmt", "yuv420p",
		"-r", strconv.Itoa(frameRate),
		outputPath,
	)

	cmd := exec.Command("ffmpeg", args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ffmpeg concat failed: %v\nStderr: %s", err, stderr.String())
	}

	log.Printf("Successfully concatenated %d clips into '%s'", len(clipPaths), outputPath)
	return nil
}

// backgroundColor picks the scene background tint: light green for a happy
// scene, light blue for everything else.
func backgroundColor(mood string) string {
	if mood == "happy" {
		return "0xF0FFF0"
	}
	return "0xF0F0FF"
}

// overlayXExpr builds the overlay x expression that sweeps the avatar across
// the canvas, one full sine cycle per clip.
func overlayXExpr(duration float64) string {
	period := math.Max(duration, minOscillationPeriod)
	return fmt.Sprintf("(main_w-overlay_w)*(0.5+0.4*sin(2*PI*t/%.3f))", period)
}

// concatFilter scales and pads every input onto the canvas, then feeds the
// normalized streams into the concat filter.
func concatFilter(n int) string {
	var filter strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&filter, "[%d:v]scale=%d:%d:force_original_aspect_ratio=decrease,pad=%d:%d:(ow-iw)/2:(oh-ih)/2,setsar=1[v%d];",
			i, canvasWidth, canvasHeight, canvasWidth, canvasHeight, i)
	}
	for i := 0; i < n; i++ {
		fmt.Fprintf(&filter, "[v%d][%d:a]", i, i)
	}
	fmt.Fprintf(&filter, "concat=n=%d:v=1:a=1[outv][outa]", n)
	return filter.String()
}
