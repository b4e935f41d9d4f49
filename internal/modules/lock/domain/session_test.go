package domain

import (
	"testing"
	"time"
)

func lockedSession(minutes int) *Session {
	task, video := Pick(func(int) int { return 0 })
	return NewSession("s-1", task, video, minutes, time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC))
}

func TestFormatCountdown(t *testing.T) {
	t.Parallel()

	cases := map[int]string{
		300:  "5:00",
		60:   "1:00",
		59:   "0:59",
		61:   "1:01",
		5:    "0:05",
		0:    "0:00",
		-3:   "0:00",
		3600: "60:00",
	}
	for seconds, want := range cases {
		if got := FormatCountdown(seconds); got != want {
			t.Fatalf("FormatCountdown(%d) = %q, want %q", seconds, got, want)
		}
	}
}

func TestTickUnlocksAfterFullDuration(t *testing.T) {
	t.Parallel()

	s := lockedSession(1)
	if s.RemainingSeconds != 60 {
		t.Fatalf("expected 60 seconds, got %d", s.RemainingSeconds)
	}
	for i := 0; i < 59; i++ {
		if s.Tick() {
			t.Fatalf("unlocked early at tick %d", i+1)
		}
	}
	if s.RemainingSeconds != 1 || s.State != Locked {
		t.Fatalf("unexpected state after 59 ticks: %+v", s)
	}
	if !s.Tick() {
		t.Fatalf("expected unlock on the 60th tick")
	}
	if s.State != Unlocked || s.Reason != UnlockTimeout {
		t.Fatalf("unexpected state after timeout: %+v", s)
	}
	if s.Tick() {
		t.Fatalf("tick after unlock must be a no-op")
	}
}

func TestSubmitRequiresExactLiteral(t *testing.T) {
	t.Parallel()

	literal := Tasks()[0].RequiredLiteral
	rejected := []string{
		"i am focused and ready to study.",
		"I am focused and ready to study",
		"I am  focused and ready to study.",
		"",
	}
	for _, answer := range rejected {
		s := lockedSession(5)
		if s.Submit(answer) {
			t.Fatalf("answer %q should be rejected", answer)
		}
		if !s.InputError || s.State != Locked {
			t.Fatalf("rejected answer must keep the lock and flag input: %+v", s)
		}
	}

	s := lockedSession(5)
	if !s.Submit("  \t" + literal + "\n ") {
		t.Fatalf("padded literal should unlock")
	}
	if s.Reason != UnlockTask || s.Attempts != 1 {
		t.Fatalf("unexpected state after unlock: %+v", s)
	}
}

func TestRetriesAreUnlimited(t *testing.T) {
	t.Parallel()

	s := lockedSession(5)
	for i := 0; i < 25; i++ {
		s.Submit("nope")
	}
	if !s.Submit(s.Task.RequiredLiteral) {
		t.Fatalf("expected unlock after many retries")
	}
	if s.Attempts != 26 {
		t.Fatalf("expected 26 attempts, got %d", s.Attempts)
	}
}

func TestRenderOverlay(t *testing.T) {
	t.Parallel()

	s := lockedSession(5)
	view := RenderOverlay(s)
	if !view.Visible || !view.BlocksInput {
		t.Fatalf("locked session must render a blocking overlay")
	}
	if view.Heading != OverlayHeading || view.Countdown != "5:00" || view.Placeholder != InputPlaceholder {
		t.Fatalf("unexpected view: %+v", view)
	}
	if view.TaskPrompt != "Type this sentence exactly: 'I am focused and ready to study.'" {
		t.Fatalf("unexpected prompt %q", view.TaskPrompt)
	}
	if view.VideoEmbedURL != "https://www.youtube.com/embed/dQw4w9WgXcQ" {
		t.Fatalf("unexpected embed url %q", view.VideoEmbedURL)
	}

	s.Submit("wrong")
	if view := RenderOverlay(s); view.Placeholder != InputErrorMessage || !view.InputError {
		t.Fatalf("expected error placeholder, got %+v", view)
	}

	s.Close()
	if view := RenderOverlay(s); view.Visible {
		t.Fatalf("closed session must not render")
	}
	if view := RenderOverlay(nil); view != (OverlayView{}) {
		t.Fatalf("nil session must render the zero view")
	}
}

func TestCatalogs(t *testing.T) {
	t.Parallel()

	if n := len(Tasks()); n != 5 {
		t.Fatalf("expected 5 tasks, got %d", n)
	}
	if n := len(Videos()); n != 7 {
		t.Fatalf("expected 7 videos, got %d", n)
	}
	for _, task := range Tasks() {
		if task.Prompt != "Type this sentence exactly: '"+task.RequiredLiteral+"'" {
			t.Fatalf("prompt %q does not quote %q", task.Prompt, task.RequiredLiteral)
		}
	}
	task, video := Pick(func(n int) int { return n + 10 })
	if task != Tasks()[4] || video != Videos()[6] {
		t.Fatalf("out-of-range choice should clamp to the last entry")
	}
}

func TestConfigNormalize(t *testing.T) {
	t.Parallel()

	if got := (Config{LockDurationMinutes: 0}).Normalize().LockDurationMinutes; got != DefaultLockDurationMinutes {
		t.Fatalf("expected default duration, got %d", got)
	}
	if got := (Config{LockDurationMinutes: 61}).Normalize().LockDurationMinutes; got != DefaultLockDurationMinutes {
		t.Fatalf("expected default duration, got %d", got)
	}
	if got := (Config{LockDurationMinutes: 60}).Normalize().LockDurationMinutes; got != 60 {
		t.Fatalf("expected 60, got %d", got)
	}
}
