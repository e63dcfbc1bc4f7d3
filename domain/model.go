package domain

// VerseLines is the number of bars requested for every generated verse.
const VerseLines = 16

// NoContentPlaceholder is returned in place of a verse when the provider
// answers successfully but without any usable text.
const NoContentPlaceholder = "No content generated"

// AudioMediaType is the media type of every synthesized payload.
const AudioMediaType = "audio/mpeg"

type Persona struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Style   string `json:"style"`
	VoiceID string `json:"voice_id"`
}
