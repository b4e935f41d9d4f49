package bootstrap

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	lockdto "focuslock/internal/modules/lock/dto"
	lockview "focuslock/internal/ui/views/lock"
)

// LockResult describes what happened to a page opened with RunLock.
type LockResult struct {
	Evaluation lockdto.EvaluateOutput
	Outcome    string
}

// RunLock evaluates target as a freshly loaded page and, when it locks, keeps
// the terminal overlay up until the page unlocks or is closed.
func RunLock(ctx context.Context, app *App, pageID, target string) (LockResult, error) {
	snapshot, err := app.ClassifierCLI.Snapshot(ctx, target)
	if err != nil {
		return LockResult{}, fmt.Errorf("capture page: %w", err)
	}
	eval, err := app.LockCLI.Evaluate(ctx, pageID, snapshot.Title, snapshot.BodyExcerpt, snapshot.URL)
	if err != nil {
		return LockResult{}, err
	}
	result := LockResult{Evaluation: eval}
	if !eval.Page.Overlay.Visible {
		_ = app.LockCLI.Close(ctx, pageID)
		return result, nil
	}

	model := lockview.New(app.LockCLI, pageID, eval.Page.Overlay)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	detach := app.Overlays.Attach(pageID, func(o lockdto.OverlayOutput) {
		program.Send(lockview.OverlayMsg{Overlay: o})
	})
	defer detach()

	final, err := program.Run()
	_ = app.LockCLI.Close(context.Background(), pageID)
	if err != nil {
		return result, err
	}
	if m, ok := final.(lockview.Model); ok {
		result.Outcome = m.Outcome()
	}
	return result, nil
}
