package domain

import "math/rand/v2"

const embedBase = "https://www.youtube.com/embed/"

// MicroTask is a sentence the user must type to unlock a page early.
type MicroTask struct {
	Prompt          string
	RequiredLiteral string
}

func newTypingTask(sentence string) MicroTask {
	return MicroTask{
		Prompt:          "Type this sentence exactly: '" + sentence + "'",
		RequiredLiteral: sentence,
	}
}

var tasks = []MicroTask{
	newTypingTask("I am focused and ready to study."),
	newTypingTask("Learning is my priority right now."),
	newTypingTask("I will stay focused on my goals."),
	newTypingTask("Distractions will not control me."),
	newTypingTask("I am committed to my education."),
}

// Tasks returns the compiled-in task catalog.
func Tasks() []MicroTask {
	return append([]MicroTask(nil), tasks...)
}

type Video struct {
	ID    string
	Title string
}

func (v Video) EmbedURL() string {
	return embedBase + v.ID
}

var videos = []Video{
	{ID: "dQw4w9WgXcQ", Title: "Never Gonna Give You Up - Rick Astley"},
	{ID: "jNQXAC9IVRw", Title: "How to Learn Effectively - Study Tips"},
	{ID: "Z9RY3mZ2Zc8", Title: "Calming Nature Sounds - Forest Rain"},
	{ID: "mghhLqu31cQ", Title: "Pomodoro Technique Explained"},
	{ID: "videoseries?list=PLZHQObOWTQDMsr9K-rj53DwVRMYO3t5Yr", Title: "Essence of Linear Algebra - 3Blue1Brown"},
	{ID: "PLZHQObOWTQDO9I9H8XcQ", Title: "Crash Course Physics Playlist"},
	{ID: "PLZHQObOWTQDP5MtkW1noq5nbdq2FrOFzV", Title: "Crash Course Biology Playlist"},
}

func Videos() []Video {
	return append([]Video(nil), videos...)
}

// Chooser picks an index in [0, n). n is always positive.
type Chooser func(n int) int

func RandomChooser(n int) int {
	return rand.IntN(n)
}

// Pick draws one task and one video. An out-of-range choice is clamped.
func Pick(choose Chooser) (MicroTask, Video) {
	if choose == nil {
		choose = RandomChooser
	}
	return tasks[clampIndex(choose(len(tasks)), len(tasks))], videos[clampIndex(choose(len(videos)), len(videos))]
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
