package handlers

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"hindicartoon/backend/models"
	"hindicartoon/backend/utils"
)

var validate = validator.New()

const (
	defaultSceneDuration = 5.0
	defaultMood          = "happy"

	// The shared avatar is always rendered happy; per-scene mood only
	// changes the clip background.
	avatarMood = "happy"
)

// ErrorResponse defines a common structure for error responses.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// GenerateVideo godoc
// @Summary Generate a cartoon video from narration scenes
// @Description Renders the avatar, narrates every scene, composes one clip per scene and concatenates them into a single MP4 served under /videos.
// @Tags generation
// @Accept json
// @Produce json
// @Param request body models.GenerateRequest true "Scenes to narrate"
// @Success 200 {object} models.GenerateResponse "Video generated successfully"
// @Failure 400 {object} ErrorResponse "Invalid request body or scene list"
// @Failure 500 {object} ErrorResponse "Generation pipeline failed"
// @Router /api/generate [post]
func (h *ApplicationHandler) GenerateVideo(c *fiber.Ctx) error {
	payload := new(models.GenerateRequest)
	if err := c.BodyParser(payload); err != nil {
		h.Logger.Errorf("Error parsing generate payload: %v", err)
		return utils.RespondWithError(c, fiber.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
	}

	if len(payload.Scenes) == 0 {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "At least one scene is required")
	}

	if err := validate.Struct(payload); err != nil {
		h.Logger.Errorf("Validation error for generate payload: %v", err)
		return utils.RespondWithError(c, fiber.StatusBadRequest, strings.Join(utils.FormatValidationErrors(err), ", "))
	}

	token := uuid.New().String()
	h.Logger.Infof("Starting video generation %s with %d scenes", token, len(payload.Scenes))

	fileName, err := h.runPipeline(token, payload)
	if err != nil {
		h.Logger.Errorf("Video generation %s failed: %v", token, err)
		return utils.RespondWithError(c, fiber.StatusInternalServerError, fmt.Sprintf("Failed to generate video: %v", err))
	}

	h.Logger.Infof("Video generation %s completed: %s", token, fileName)
	return c.Status(fiber.StatusOK).JSON(models.GenerateResponse{
		VideoURL: "/videos/" + fileName,
		FileName: fileName,
	})
}

// runPipeline executes one generation request end to end: render the shared
// avatar, narrate and compose every scene in order, and concatenate the clips
// under a title-derived filename. The avatar image and the intermediate clip
// directory are removed on every exit path; narration audio stays on disk
// even when a later scene fails.
func (h *ApplicationHandler) runPipeline(token string, req *models.GenerateRequest) (string, error) {
	avatarPath := filepath.Join(h.OutputDir, fmt.Sprintf("avatar_%s.png", token))
	defer os.Remove(avatarPath) // best-effort cleanup, success or failure

	if err := h.Face.Render(avatarMood, avatarPath); err != nil {
		return "", fmt.Errorf("rendering avatar: %w", err)
	}

	clipDir, err := os.MkdirTemp("", "cartoon-clips-")
	if err != nil {
		return "", fmt.Errorf("creating clip directory: %w", err)
	}
	defer os.RemoveAll(clipDir)

	clipPaths := make([]string, 0, len(req.Scenes))
	for i, scene := range req.Scenes {
		audioPath := filepath.Join(h.OutputDir, fmt.Sprintf("scene_%s_%d.mp3", token, i))
		if err := h.Narrator.Synthesize(scene.TextHi, audioPath); err != nil {
			return "", fmt.Errorf("narrating scene %d: %w", i, err)
		}

		audioLength, err := h.Editor.GetAudioDuration(audioPath)
		if err != nil {
			return "", fmt.Errorf("probing narration for scene %d: %w", i, err)
		}
		duration := effectiveDuration(scene.Duration, audioLength.Seconds())

		mood := scene.Mood
		if mood == "" {
			mood = defaultMood
		}

		clipPath := filepath.Join(clipDir, fmt.Sprintf("clip_%d.mp4", i))
		if err := h.Editor.ComposeScene(avatarPath, audioPath, clipPath, duration, mood); err != nil {
			return "", fmt.Errorf("composing scene %d: %w", i, err)
		}
		clipPaths = append(clipPaths, clipPath)
	}

	fileName := fmt.Sprintf("%s_%s.mp4", utils.SanitizeTitle(req.Title), token)
	if err := h.Editor.Concatenate(clipPaths, filepath.Join(h.OutputDir, fileName)); err != nil {
		return "", fmt.Errorf("assembling final video: %w", err)
	}

	return fileName, nil
}

// effectiveDuration returns the clip duration for a scene: the requested
// duration (or the default when unset), extended so narration is never
// truncated.
func effectiveDuration(requested, audioSeconds float64) float64 {
	if requested == 0 {
		requested = defaultSceneDuration
	}
	return math.Max(requested, audioSeconds)
}
