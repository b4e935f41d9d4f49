// Package keywords holds the study keyword configuration and its two accepted
// shapes: the categorized map and the legacy flat list. Both are normalized
// into Categories at the boundary so matching code never branches on shape.
package keywords

import (
	"encoding/json"
	"slices"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

type Shape int

const (
	ShapeAbsent Shape = iota
	ShapeFlat
	ShapeCategorized
)

func (s Shape) String() string {
	switch s {
	case ShapeFlat:
		return "flat"
	case ShapeCategorized:
		return "categorized"
	default:
		return "absent"
	}
}

const (
	CategoryAcademic = "academic"
	CategoryStudy    = "study"
	CategoryLearning = "learning"
	CategoryCourse   = "course"
)

// DefaultCategoryNames is the display order of the built-in categories.
var DefaultCategoryNames = []string{CategoryAcademic, CategoryStudy, CategoryLearning, CategoryCourse}

// Categories maps a category name to its ordered keywords.
type Categories map[string][]string

// Defaults returns a fresh copy of the built-in keyword set.
func Defaults() Categories {
	return Categories{
		CategoryAcademic: {"study", "academic", "university", "college", "school", "syllabus", "curriculum"},
		CategoryStudy:    {"lecture", "assignment", "homework", "tutorial", "notes", "textbook", "exam"},
		CategoryLearning: {"research", "learning", "education", "workshop", "tutorial", "knowledge"},
		CategoryCourse:   {"course", "project", "lab", "exam", "lecture", "seminar"},
	}
}

// legacyHome files flat-list keywords into a category. Anything unknown lands in study.
var legacyHome = map[string]string{
	"academic": CategoryAcademic, "university": CategoryAcademic, "college": CategoryAcademic,
	"school": CategoryAcademic, "syllabus": CategoryAcademic, "curriculum": CategoryAcademic,
	"lecture": CategoryStudy, "assignment": CategoryStudy, "homework": CategoryStudy,
	"tutorial": CategoryStudy, "notes": CategoryStudy, "textbook": CategoryStudy, "exam": CategoryStudy,
	"research": CategoryLearning, "learning": CategoryLearning, "education": CategoryLearning,
	"workshop": CategoryLearning, "knowledge": CategoryLearning,
	"course": CategoryCourse, "project": CategoryCourse, "lab": CategoryCourse, "seminar": CategoryCourse,
}

// Lower applies the language-neutral Unicode lower-case mapping.
func Lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// Config is the keyword configuration exactly as it was supplied.
type Config struct {
	shape      Shape
	flat       []string
	categories Categories
}

func Flat(words ...string) Config {
	return Config{shape: ShapeFlat, flat: slices.Clone(words)}
}

func Categorized(categories map[string][]string) Config {
	copied := make(Categories, len(categories))
	for name, words := range categories {
		copied[name] = slices.Clone(words)
	}
	return Config{shape: ShapeCategorized, categories: copied}
}

func (c Config) Shape() Shape { return c.shape }

// Categories normalizes the configuration into the canonical shape. Keywords
// are lowercased; blank and repeated keywords within a category are dropped.
func (c Config) Categories() Categories {
	out := Categories{}
	switch c.shape {
	case ShapeCategorized:
		for name, words := range c.categories {
			for _, w := range words {
				out.add(name, w)
			}
		}
	case ShapeFlat:
		for _, w := range c.flat {
			lw := Lower(w)
			home, ok := legacyHome[strings.TrimSpace(lw)]
			if !ok {
				home = CategoryStudy
			}
			out.add(home, lw)
		}
	}
	return out
}

func (cs Categories) add(category, word string) {
	lw := Lower(word)
	if strings.TrimSpace(lw) == "" {
		return
	}
	if slices.Contains(cs[category], lw) {
		return
	}
	cs[category] = append(cs[category], lw)
}

// Names returns the category names, built-in ones first.
func (cs Categories) Names() []string {
	names := make([]string, 0, len(cs))
	for _, n := range DefaultCategoryNames {
		if _, ok := cs[n]; ok {
			names = append(names, n)
		}
	}
	var extra []string
	for n := range cs {
		if !slices.Contains(DefaultCategoryNames, n) {
			extra = append(extra, n)
		}
	}
	sort.Strings(extra)
	return append(names, extra...)
}

// Union flattens every category into one set, in category order.
func (cs Categories) Union() []string {
	seen := map[string]bool{}
	var out []string
	for _, name := range cs.Names() {
		for _, w := range cs[name] {
			lw := Lower(w)
			if strings.TrimSpace(lw) == "" || seen[lw] {
				continue
			}
			seen[lw] = true
			out = append(out, lw)
		}
	}
	return out
}

// Count is the number of keywords across categories, duplicates included.
func (cs Categories) Count() int {
	n := 0
	for _, words := range cs {
		n += len(words)
	}
	return n
}

func (cs Categories) Clone() Categories {
	out := make(Categories, len(cs))
	for name, words := range cs {
		out[name] = slices.Clone(words)
	}
	return out
}

// Set is the union of the configuration's keywords.
func (c Config) Set() []string {
	return c.Categories().Union()
}

// fromAny builds a Config from a decoded JSON or YAML value. Shapes other than
// an object or a list are treated as absent.
func fromAny(raw any) Config {
	switch v := raw.(type) {
	case map[string]any:
		categories := Categories{}
		for name, words := range v {
			list, ok := words.([]any)
			if !ok {
				continue
			}
			categories[name] = stringsOf(list)
		}
		return Config{shape: ShapeCategorized, categories: categories}
	case []any:
		return Config{shape: ShapeFlat, flat: stringsOf(v)}
	default:
		return Config{}
	}
}

func stringsOf(list []any) []string {
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func (c Config) toAny() any {
	switch c.shape {
	case ShapeCategorized:
		return map[string][]string(c.categories)
	case ShapeFlat:
		return c.flat
	default:
		return nil
	}
}

func (c *Config) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*c = fromAny(raw)
	return nil
}

func (c Config) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.toAny())
}

func (c *Config) UnmarshalYAML(node *yaml.Node) error {
	var raw any
	if err := node.Decode(&raw); err != nil {
		*c = Config{}
		return nil
	}
	*c = fromAny(raw)
	return nil
}

func (c Config) MarshalYAML() (any, error) {
	return c.toAny(), nil
}

// IsZero lets encoders omit an absent configuration.
func (c Config) IsZero() bool {
	return c.shape == ShapeAbsent
}
