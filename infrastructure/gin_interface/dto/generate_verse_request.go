package dto

type GenerateVerseRequest struct {
	Topic  string `json:"topic" binding:"required"`
	Rapper string `json:"rapper" binding:"required"`
}

type GenerateVerseResponse struct {
	Rap string `json:"rap"`
}
