package dto

type GenerateAudioRequest struct {
	Text  string `json:"text" binding:"required"`
	Voice string `json:"voice"`
}
