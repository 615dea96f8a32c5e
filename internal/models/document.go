package models

// DocumentConfig is the config section of the shared store document.
// Version is a semver string bumped (patch) on every publish.
type DocumentConfig struct {
	TotalQuestions int     `json:"totalQuestions"`
	Version        string  `json:"version"`
	PassingScore   float64 `json:"passingScore"`
	LastModified   string  `json:"lastModified,omitempty"`
	ModifiedBy     string  `json:"modifiedBy,omitempty"`
}

// Document is the question-bank configuration document exchanged with the
// remote JSON store. Serialized size is capped at 100KB by the store, so
// writers validate before sending.
type Document struct {
	Config     DocumentConfig `json:"config"`
	Dimensions []Dimension    `json:"dimensions"`
	Questions  []Question     `json:"questions"`
	ScoreGuide ScoreGuide     `json:"scoreGuide"`
}
