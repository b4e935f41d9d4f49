package dto

import "focuslock/internal/platform/keywords"

type SettingsOutput struct {
	Enabled       bool                `json:"enabled"`
	LockDuration  int                 `json:"lockDuration"`
	StudyKeywords map[string][]string `json:"studyKeywords"`
	Categories    []string            `json:"categories"`
}

// SaveInput replaces the fields that are set and keeps the rest.
type SaveInput struct {
	Enabled       *bool           `json:"enabled,omitempty"`
	LockDuration  *int            `json:"lockDuration,omitempty"`
	StudyKeywords keywords.Config `json:"studyKeywords,omitzero"`
}

type KeywordInput struct {
	Category string
	Keyword  string
}

type KeywordOutput struct {
	Category string
	Keyword  string
	Settings SettingsOutput
}
