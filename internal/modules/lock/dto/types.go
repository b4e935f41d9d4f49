package dto

type EvaluateInput struct {
	PageID   string `json:"-"`
	Title    string `json:"title"`
	BodyText string `json:"bodyText"`
	URL      string `json:"url"`
}

type SubmitInput struct {
	PageID string `json:"-"`
	Text   string `json:"text"`
}

type OverlayOutput struct {
	Visible       bool   `json:"visible"`
	BlocksInput   bool   `json:"blocksInput"`
	Heading       string `json:"heading,omitempty"`
	Countdown     string `json:"countdown,omitempty"`
	TaskHeading   string `json:"taskHeading,omitempty"`
	TaskPrompt    string `json:"taskPrompt,omitempty"`
	Placeholder   string `json:"placeholder,omitempty"`
	InputError    bool   `json:"inputError"`
	SubmitLabel   string `json:"submitLabel,omitempty"`
	VideoHeading  string `json:"videoHeading,omitempty"`
	VideoTitle    string `json:"videoTitle,omitempty"`
	VideoEmbedURL string `json:"videoEmbedUrl,omitempty"`
	Footer        string `json:"footer,omitempty"`
	Version       uint64 `json:"version"`
}

type PageStateOutput struct {
	PageID           string        `json:"pageId"`
	State            string        `json:"state"`
	SessionID        string        `json:"sessionId,omitempty"`
	RemainingSeconds int           `json:"remainingSeconds"`
	Attempts         int           `json:"attempts"`
	LastUnlock       string        `json:"lastUnlock,omitempty"`
	Overlay          OverlayOutput `json:"overlay"`
}

// EvaluateOutput is the result of a page load. When AlreadyLocked is set the
// page was not classified again and StudyRelated and Matches are empty.
type EvaluateOutput struct {
	Enabled       bool            `json:"enabled"`
	AlreadyLocked bool            `json:"alreadyLocked"`
	StudyRelated  bool            `json:"studyRelated"`
	Matches       []string        `json:"matches"`
	Page          PageStateOutput `json:"page"`
}

type SubmitOutput struct {
	Accepted bool            `json:"accepted"`
	Page     PageStateOutput `json:"page"`
}
