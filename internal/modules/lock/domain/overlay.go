package domain

const (
	OverlayHeading    = "Focus Lock"
	TaskHeading       = "Complete this task to unlock early:"
	InputPlaceholder  = "Type the sentence here..."
	InputErrorMessage = "Incorrect! Try again..."
	SubmitLabel       = "Submit"
	VideoHeading      = "Optional: Watch this educational content"
	OverlayFooter     = "Focus Lock is helping you stay productive!"
)

// OverlayView describes what the blocking overlay shows. The zero value is a
// removed overlay.
type OverlayView struct {
	Visible       bool
	BlocksInput   bool
	SessionID     string
	Heading       string
	Countdown     string
	Remaining     int
	TaskHeading   string
	TaskPrompt    string
	Placeholder   string
	InputError    bool
	SubmitLabel   string
	VideoHeading  string
	VideoTitle    string
	VideoEmbedURL string
	Footer        string

	// Version increases with every change a controller publishes.
	Version uint64
}

func RenderOverlay(s *Session) OverlayView {
	if s == nil || s.State != Locked {
		return OverlayView{}
	}
	placeholder := InputPlaceholder
	if s.InputError {
		placeholder = InputErrorMessage
	}
	return OverlayView{
		Visible:       true,
		BlocksInput:   true,
		SessionID:     s.ID,
		Heading:       OverlayHeading,
		Countdown:     FormatCountdown(s.RemainingSeconds),
		Remaining:     s.RemainingSeconds,
		TaskHeading:   TaskHeading,
		TaskPrompt:    s.Task.Prompt,
		Placeholder:   placeholder,
		InputError:    s.InputError,
		SubmitLabel:   SubmitLabel,
		VideoHeading:  VideoHeading,
		VideoTitle:    s.Video.Title,
		VideoEmbedURL: s.Video.EmbedURL(),
		Footer:        OverlayFooter,
	}
}
