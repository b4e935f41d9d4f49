package dto

import "focuslock/internal/platform/keywords"

type ClassifyInput struct {
	Title    string           `json:"title"`
	BodyText string           `json:"bodyText"`
	URL      string           `json:"url"`
	Keywords *keywords.Config `json:"studyKeywords,omitempty"`
}

type SnapshotInput struct {
	Target string
}

type SnapshotOutput struct {
	Title       string `json:"title"`
	BodyExcerpt string `json:"bodyExcerpt"`
	URL         string `json:"url"`
}

type ClassifyOutput struct {
	StudyRelated bool           `json:"studyRelated"`
	Matches      []string       `json:"matches"`
	KeywordCount int            `json:"keywordCount"`
	Snapshot     SnapshotOutput `json:"snapshot"`
}
