package domain

import (
	"fmt"
	"strings"
	"time"

	"focuslock/internal/platform/keywords"
)

const (
	DefaultLockDurationMinutes = 5
	MinLockDurationMinutes     = 1
	MaxLockDurationMinutes     = 60
)

// Config is the slice of settings a lock controller acts on.
type Config struct {
	Enabled             bool
	LockDurationMinutes int
	Keywords            keywords.Config
}

func DefaultConfig() Config {
	return Config{
		Enabled:             true,
		LockDurationMinutes: DefaultLockDurationMinutes,
		Keywords:            keywords.Categorized(keywords.Defaults()),
	}
}

// Normalize replaces an out-of-range duration with the default.
func (c Config) Normalize() Config {
	if c.LockDurationMinutes < MinLockDurationMinutes || c.LockDurationMinutes > MaxLockDurationMinutes {
		c.LockDurationMinutes = DefaultLockDurationMinutes
	}
	return c
}

// Page is the content of a page at load time.
type Page struct {
	Title string
	Text  string
	URL   string
}

type State int

const (
	Unlocked State = iota
	Locked
)

func (s State) String() string {
	if s == Locked {
		return "locked"
	}
	return "unlocked"
}

type UnlockReason string

const (
	UnlockNone    UnlockReason = ""
	UnlockTask    UnlockReason = "task"
	UnlockTimeout UnlockReason = "timeout"
	UnlockClosed  UnlockReason = "closed"
)

type Session struct {
	ID               string
	Task             MicroTask
	Video            Video
	StartedAt        time.Time
	DurationSeconds  int
	RemainingSeconds int
	InputError       bool
	Attempts         int
	State            State
	Reason           UnlockReason
}

func NewSession(id string, task MicroTask, video Video, minutes int, startedAt time.Time) *Session {
	seconds := minutes * 60
	return &Session{
		ID:               id,
		Task:             task,
		Video:            video,
		StartedAt:        startedAt,
		DurationSeconds:  seconds,
		RemainingSeconds: seconds,
		State:            Locked,
	}
}

// Tick advances the countdown by one second and reports whether the session
// unlocked because it ran out.
func (s *Session) Tick() bool {
	if s.State != Locked {
		return false
	}
	if s.RemainingSeconds > 0 {
		s.RemainingSeconds--
	}
	if s.RemainingSeconds <= 0 {
		s.unlock(UnlockTimeout)
		return true
	}
	return false
}

// Submit checks an answer. Only surrounding whitespace is ignored; the
// comparison is case-sensitive. A wrong answer raises the input error flag.
func (s *Session) Submit(text string) bool {
	if s.State != Locked {
		return false
	}
	s.Attempts++
	if strings.TrimSpace(text) == s.Task.RequiredLiteral {
		s.InputError = false
		s.unlock(UnlockTask)
		return true
	}
	s.InputError = true
	return false
}

func (s *Session) ClearInputError() {
	s.InputError = false
}

// Close ends a session because its page went away.
func (s *Session) Close() {
	if s.State == Locked {
		s.unlock(UnlockClosed)
	}
}

func (s *Session) unlock(reason UnlockReason) {
	s.State = Unlocked
	s.Reason = reason
}

// FormatCountdown renders seconds as M:SS.
func FormatCountdown(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
