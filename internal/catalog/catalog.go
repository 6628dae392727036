// Package catalog holds the bundled interview data: question templates, roles,
// interview types and the history of past interviews with their evaluations.
package catalog

import (
	_ "embed"
	"fmt"
	"math"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/maruel/natural"
	"gopkg.in/yaml.v3"

	"github.com/ayoisaiah/rehearse/internal/session"
	"github.com/ayoisaiah/rehearse/internal/timeutil"
)

//go:embed data/catalog.yml
var catalogYAML []byte

type (
	// Catalog is the full set of bundled data.
	Catalog struct {
		Roles      []string        `yaml:"roles"      json:"roles"`
		Types      []InterviewType `yaml:"types"      json:"types"`
		Templates  []Template      `yaml:"templates"  json:"templates"`
		Utterances []string        `yaml:"utterances" json:"-"`
		Interviews []Interview     `yaml:"interviews" json:"interviews"`
	}

	// InterviewType is one of the selectable interview styles.
	InterviewType struct {
		Value       string `yaml:"value"       json:"value"`
		Label       string `yaml:"label"       json:"label"`
		Description string `yaml:"description" json:"description"`
	}

	// Question is a template question. Focus is the phrase highlighted when
	// the question is shown.
	Question struct {
		Prompt string `yaml:"prompt" json:"prompt"`
		Focus  string `yaml:"focus"  json:"focus"`
	}

	// Template is a named list of questions.
	Template struct {
		ID        string     `yaml:"id"        json:"id"`
		Name      string     `yaml:"name"      json:"name"`
		Company   string     `yaml:"company"   json:"company"`
		Type      string     `yaml:"type"      json:"type"`
		Questions []Question `yaml:"questions" json:"questions"`
	}

	// Line is one line of a recorded transcript.
	Line struct {
		Time    string `yaml:"time"    json:"time"`
		Speaker string `yaml:"speaker" json:"speaker"`
		Text    string `yaml:"text"    json:"text"`
	}

	// Competency is a rated skill area out of five.
	Competency struct {
		ID          string  `yaml:"id"          json:"id"`
		Name        string  `yaml:"name"        json:"name"`
		Description string  `yaml:"description" json:"description"`
		Rating      float64 `yaml:"rating"      json:"rating"`
	}

	// Evaluation is the feedback attached to a past interview.
	Evaluation struct {
		Competencies []Competency `yaml:"competencies" json:"competencies"`
		Strengths    []string     `yaml:"strengths"    json:"strengths"`
		Improvements []string     `yaml:"improvements" json:"improvements"`
		NextSteps    []string     `yaml:"next_steps"   json:"next_steps"`
	}

	// Interview is a past practice interview.
	Interview struct {
		Date       time.Time     `yaml:"date"       json:"date"`
		ID         string        `yaml:"id"         json:"id"`
		Title      string        `yaml:"title"      json:"title"`
		Company    string        `yaml:"company"    json:"company"`
		Type       string        `yaml:"type"       json:"type"`
		Opening    string        `yaml:"opening"    json:"opening"`
		Transcript []Line        `yaml:"transcript" json:"transcript"`
		Evaluation Evaluation    `yaml:"evaluation" json:"evaluation"`
		Duration   time.Duration `yaml:"duration"   json:"-"`
		Rating     float64       `yaml:"rating"     json:"rating"`
	}

	// Filter narrows down the interview history.
	Filter struct {
		Since  time.Time
		Search string
		Type   string
	}
)

// TypeAll matches every interview type.
const TypeAll = "all"

var defaultCatalog = sync.OnceValues(func() (*Catalog, error) {
	return Parse(catalogYAML)
})

// Default returns the bundled catalog. It panics if the embedded data is
// invalid.
func Default() *Catalog {
	c, err := defaultCatalog()
	if err != nil {
		panic(err)
	}

	return c
}

// Parse decodes and checks catalog data.
func Parse(b []byte) (*Catalog, error) {
	var c Catalog

	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, errDecodeCatalog.Wrap(err)
	}

	if err := c.check(); err != nil {
		return nil, err
	}

	return &c, nil
}

func (c *Catalog) check() error {
	seen := make(map[string]bool, len(c.Templates))

	for i := range c.Templates {
		t := &c.Templates[i]

		if seen[t.ID] {
			return errDuplicateID.Fmt("template", t.ID)
		}

		seen[t.ID] = true

		if len(t.Questions) == 0 {
			return errEmptyTemplate.Fmt(t.ID)
		}
	}

	clear(seen)

	for i := range c.Interviews {
		iv := &c.Interviews[i]

		if seen[iv.ID] {
			return errDuplicateID.Fmt("interview", iv.ID)
		}

		seen[iv.ID] = true

		for _, l := range iv.Transcript {
			if _, err := timeutil.ParseClock(l.Time); err != nil {
				return errBadLineTime.Fmt(iv.ID, l.Time)
			}
		}
	}

	return nil
}

// Template returns the template with the given id.
func (c *Catalog) Template(id string) (Template, error) {
	i := slices.IndexFunc(c.Templates, func(t Template) bool {
		return t.ID == id
	})
	if i < 0 {
		return Template{}, ErrUnknownTemplate.Fmt(id)
	}

	return c.Templates[i], nil
}

// TemplateIDs lists the ids of all templates in catalog order.
func (c *Catalog) TemplateIDs() []string {
	ids := make([]string, len(c.Templates))
	for i := range c.Templates {
		ids[i] = c.Templates[i].ID
	}

	return ids
}

// HasType reports whether v names a known interview type.
func (c *Catalog) HasType(v string) bool {
	return slices.ContainsFunc(c.Types, func(t InterviewType) bool {
		return t.Value == v
	})
}

// TypeLabel returns the display label for an interview type value.
func (c *Catalog) TypeLabel(v string) string {
	for _, t := range c.Types {
		if t.Value == v {
			return t.Label
		}
	}

	return v
}

// Interview returns the past interview with the given id.
func (c *Catalog) Interview(id string) (Interview, error) {
	i := slices.IndexFunc(c.Interviews, func(iv Interview) bool {
		return iv.ID == id
	})
	if i < 0 {
		return Interview{}, ErrInterviewNotFound.Fmt(id)
	}

	return c.Interviews[i], nil
}

// Find returns the interviews matching f, newest first. Interviews on the same
// day are ordered by title.
func (c *Catalog) Find(f Filter) []Interview {
	search := strings.ToLower(strings.TrimSpace(f.Search))

	var out []Interview

	for _, iv := range c.Interviews {
		if !f.Since.IsZero() && iv.Date.Before(timeutil.RoundToStart(f.Since)) {
			continue
		}

		if f.Type != "" && f.Type != TypeAll && iv.Type != f.Type {
			continue
		}

		if search != "" &&
			!strings.Contains(strings.ToLower(iv.Title), search) &&
			!strings.Contains(strings.ToLower(iv.Company), search) {
			continue
		}

		out = append(out, iv)
	}

	slices.SortStableFunc(out, func(a, b Interview) int {
		if n := b.Date.Compare(a.Date); n != 0 {
			return n
		}

		switch {
		case natural.Less(a.Title, b.Title):
			return -1
		case natural.Less(b.Title, a.Title):
			return 1
		default:
			return 0
		}
	})

	return out
}

// AverageRating is the mean rating rounded to one decimal place. It is zero
// for an empty slice.
func AverageRating(interviews []Interview) float64 {
	if len(interviews) == 0 {
		return 0
	}

	var sum float64
	for _, iv := range interviews {
		sum += iv.Rating
	}

	return roundTenth(sum / float64(len(interviews)))
}

// SessionQuestions converts the template into the questions of a live
// session.
func (t Template) SessionQuestions() []session.Question {
	qs := make([]session.Question, len(t.Questions))
	for i, q := range t.Questions {
		qs[i] = session.Question{
			Index:  i,
			Prompt: q.Prompt,
			Focus:  q.Focus,
		}
	}

	return qs
}

// Offset is the line's position in seconds from the start of the recording.
func (l Line) Offset() int {
	secs, _ := timeutil.ParseClock(l.Time)

	return secs
}

// Overall is the mean competency rating rounded to one decimal place.
func (e Evaluation) Overall() float64 {
	if len(e.Competencies) == 0 {
		return 0
	}

	var sum float64
	for _, c := range e.Competencies {
		sum += c.Rating
	}

	return roundTenth(sum / float64(len(e.Competencies)))
}

// Competency returns the competency with the given id.
func (e Evaluation) Competency(id string) (Competency, bool) {
	for _, c := range e.Competencies {
		if c.ID == id {
			return c, true
		}
	}

	return Competency{}, false
}

// MarshalJSON renders the duration in a human readable form.
func (iv Interview) MarshalJSON() ([]byte, error) {
	type alias Interview

	return json.Marshal(struct {
		alias
		Duration string `json:"duration"`
	}{
		alias:    alias(iv),
		Duration: timeutil.Humanize(iv.Duration),
	})
}

func (iv Interview) String() string {
	return fmt.Sprintf("%s at %s (%s)", iv.Title, iv.Company, iv.Date.Format(time.DateOnly))
}

func roundTenth(f float64) float64 {
	return math.Round(f*10) / 10
}
