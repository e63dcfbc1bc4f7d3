package domain

const (
	DefaultPersonaID = "eminem"
	DefaultVoiceID   = "pNInz6obpgDQGcFmaJgB"
	FallbackStyle    = "unique rap style"
)

var builtinPersonas = []Persona{
	{
		ID:      "eminem",
		Name:    "Eminem",
		Style:   "complex rhymes, fast flow, aggressive tone, personal stories, and witty wordplay",
		VoiceID: "zr1kFz6kFpBF8IUeG8Dd",
	},
	{
		ID:      "jayz",
		Name:    "Jay-Z",
		Style:   "smooth flow, clever wordplay, street narratives, and business references",
		VoiceID: "Bh03t6SjOTtkTysqOi0J",
	},
	{
		ID:      "kendrick",
		Name:    "Kendrick Lamar",
		Style:   "deep storytelling, conscious lyrics, jazz influences, and varied vocal tones",
		VoiceID: "4VDCBJYux7UAPlF2Z1Ao",
	},
	{
		ID:      "drake",
		Name:    "Drake",
		Style:   "melodic delivery, emotional vulnerability, quotable lines, and pop culture references",
		VoiceID: "SQIRB9ndAszhEmtJcUKr",
	},
	{
		ID:      "tupac",
		Name:    "Tupac Shakur",
		Style:   "passionate delivery, social commentary, thug life philosophy, and emotional depth",
		VoiceID: "LZEBlcJqjdvZKY6vPKuV",
	},
	{
		ID:      "notorious",
		Name:    "The Notorious B.I.G.",
		Style:   "smooth flow, vivid storytelling, clever wordplay, and laid-back confidence",
		VoiceID: "2dJ8kc4yvg0NyxeLD46r",
	},
}

// PersonaCatalog is an immutable lookup table of the supported personas.
// Lookups never fail: unknown ids resolve to a generic persona.
type PersonaCatalog struct {
	ordered        []Persona
	byID           map[string]Persona
	defaultVoiceID string
}

// NewPersonaCatalog builds the catalog of built-in personas. voiceOverrides
// replaces the voice id of known personas; unknown keys are ignored.
func NewPersonaCatalog(defaultVoiceID string, voiceOverrides map[string]string) *PersonaCatalog {
	if defaultVoiceID == "" {
		defaultVoiceID = DefaultVoiceID
	}

	catalog := &PersonaCatalog{
		ordered:        make([]Persona, 0, len(builtinPersonas)),
		byID:           make(map[string]Persona, len(builtinPersonas)),
		defaultVoiceID: defaultVoiceID,
	}
	for _, persona := range builtinPersonas {
		if voiceID, ok := voiceOverrides[persona.ID]; ok && voiceID != "" {
			persona.VoiceID = voiceID
		}
		catalog.ordered = append(catalog.ordered, persona)
		catalog.byID[persona.ID] = persona
	}

	return catalog
}

// Resolve returns the persona for id, or a fallback persona named after the
// id itself with the generic style and the default voice.
func (c *PersonaCatalog) Resolve(id string) Persona {
	if persona, ok := c.byID[id]; ok {
		return persona
	}
	return Persona{
		ID:      id,
		Name:    id,
		Style:   FallbackStyle,
		VoiceID: c.defaultVoiceID,
	}
}

func (c *PersonaCatalog) Known(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// All returns a copy of the known personas in display order.
func (c *PersonaCatalog) All() []Persona {
	personas := make([]Persona, len(c.ordered))
	copy(personas, c.ordered)
	return personas
}

func (c *PersonaCatalog) DefaultVoiceID() string {
	return c.defaultVoiceID
}
