package domain

import (
	"strings"

	"focuslock/internal/platform/keywords"
)

// ExcerptLength is how many runes of rendered body text are classified.
const ExcerptLength = 1000

// Page is raw page content before normalization.
type Page struct {
	Title string
	Text  string
	URL   string
}

// Snapshot is the normalized view of a page that gets classified. It is
// captured once and never refreshed while a lock is active.
type Snapshot struct {
	Title       string
	BodyExcerpt string
	URL         string
}

func NewSnapshot(page Page) Snapshot {
	return Snapshot{
		Title:       keywords.Lower(page.Title),
		BodyExcerpt: truncateRunes(keywords.Lower(page.Text), ExcerptLength),
		URL:         keywords.Lower(page.URL),
	}
}

func truncateRunes(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

// Matches returns every normalized keyword found in the snapshot's title,
// body excerpt or URL.
func Matches(snapshot Snapshot, config keywords.Config) []string {
	title := keywords.Lower(snapshot.Title)
	body := keywords.Lower(snapshot.BodyExcerpt)
	url := keywords.Lower(snapshot.URL)

	var found []string
	for _, kw := range config.Set() {
		if strings.Contains(title, kw) || strings.Contains(body, kw) || strings.Contains(url, kw) {
			found = append(found, kw)
		}
	}
	return found
}

// IsStudyRelated reports whether any keyword occurs in the snapshot. An
// empty or absent keyword configuration is never study related.
func IsStudyRelated(snapshot Snapshot, config keywords.Config) bool {
	return len(Matches(snapshot, config)) > 0
}
