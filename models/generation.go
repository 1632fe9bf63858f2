package models

// Scene is one narrated segment of the output video. Duration and Mood fall
// back to their defaults in the handler when omitted.
type Scene struct {
	TextHi   string  `json:"text_hi" validate:"required"`
	Duration float64 `json:"duration" validate:"omitempty,gt=1,lte=60"`
	Mood     string  `json:"mood"`
}

// GenerateRequest is the payload for a video generation request. Scenes must
// contain at least one entry.
type GenerateRequest struct {
	Title  string  `json:"title"`
	Scenes []Scene `json:"scenes" validate:"required,min=1,dive"`
}

// GenerateResponse points the caller at the finished video on the static
// route.
type GenerateResponse struct {
	VideoURL string `json:"video_url"`
	FileName string `json:"file_name"`
}
