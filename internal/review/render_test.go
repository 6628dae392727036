package review

import (
	"bytes"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/rehearse/internal/catalog"
	"github.com/ayoisaiah/rehearse/internal/session"
	"github.com/ayoisaiah/rehearse/internal/testutil"
)

func TestMain(m *testing.M) {
	pterm.DisableColor()
	os.Exit(m.Run())
}

var handoffQuestions = []session.Question{
	{Prompt: "Tell me about yourself."},
	{Prompt: "Describe a time you disagreed with a teammate."},
	{Prompt: "Why do you want this role?"},
}

var handoffTests = []struct {
	Name    string
	Handoff session.Handoff
}{
	{
		Name: "handoff_completed",
		Handoff: session.Handoff{
			EndedAt:   time.Date(2024, 1, 15, 10, 45, 0, 0, time.UTC),
			SessionID: "sess-1",
			Reason:    session.ReasonCompleted,
			Notes:     "Tighten STAR answers\nMention metrics\n",
			Flagged:   []int{1},
			Transcript: []session.Entry{
				{Text: "I have five years of frontend experience.", QuestionIndex: 0, Offset: 5},
				{Text: "Most recently I led a design system migration.", QuestionIndex: 0, Offset: 13},
				{Text: "I want to work on accessibility at scale.", QuestionIndex: 2, Offset: 80},
			},
			Elapsed: 135,
			Reached: 3,
			Total:   3,
		},
	},
	{
		Name: "handoff_ended_early",
		Handoff: session.Handoff{
			EndedAt:   time.Date(2024, 1, 15, 10, 45, 0, 0, time.UTC),
			SessionID: "sess-2",
			Reason:    session.ReasonEnded,
			Elapsed:   40,
			Reached:   1,
			Total:     3,
		},
	},
}

func TestRenderHandoff(t *testing.T) {
	for _, tc := range handoffTests {
		t.Run(tc.Name, func(t *testing.T) {
			var buf bytes.Buffer

			RenderHandoff(&buf, tc.Handoff, handoffQuestions, "03:04 PM")

			testutil.CompareGoldenFile(t, testutil.Golden{
				Name:     tc.Name,
				Snapshot: buf.Bytes(),
			})
		})
	}
}

func TestRenderInterview(t *testing.T) {
	cat := catalog.Default()

	iv, err := cat.Interview("2")
	require.NoError(t, err)

	var buf bytes.Buffer

	RenderInterview(&buf, cat, iv)

	out := buf.String()

	assert.Contains(t, out, "Product Manager at Meta")
	assert.Contains(t, out, "Jan 12, 2024 · 30 min")
	assert.Contains(t, out, "[00:10] You: I start from the outcome")
	assert.Contains(t, out, "Overall: ★★★★☆ 4.0")
	assert.Contains(t, out, "Areas for improvement")
	assert.Contains(t, out, "  • Support prioritization calls with data")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("Transcript")), bytes.Index(buf.Bytes(), []byte("Evaluation")))
}

func TestCompareRows(t *testing.T) {
	cat := catalog.Default()

	a, err := cat.Interview("1")
	require.NoError(t, err)

	b, err := cat.Interview("2")
	require.NoError(t, err)

	want := [][]string{
		{"COMPETENCY", "#1", "#2", "CHANGE"},
		{"Technical Ability", "4.0", "-", "-"},
		{"Communication", "4.5", "4.5", "+0.0"},
		{"Problem Solving", "3.5", "4.0", "+0.5"},
		{"Confidence", "4.0", "3.5", "-0.5"},
		{"Cultural Fit", "4.5", "-", "-"},
		{"Overall", "4.1", "4.0", "-0.1"},
	}

	if diff := cmp.Diff(want, CompareRows(a, b)); diff != "" {
		t.Fatalf("CompareRows() mismatch (-want +got):\n%s", diff)
	}
}

func TestDashboardRows(t *testing.T) {
	cat := catalog.Default()

	rows := DashboardRows(cat, cat.Find(catalog.Filter{Search: "google"}))

	require.Len(t, rows, 2)
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "Senior Software Engineer", rows[1][2])
	assert.Equal(t, "Jan 15, 2024", rows[1][5])
	assert.Equal(t, "45 min", rows[1][6])
	assert.Equal(t, "4.5", rows[1][7])
}

func TestTemplateRows(t *testing.T) {
	cat := catalog.Default()

	rows := TemplateRows(cat)

	require.Len(t, rows, len(cat.Templates)+1)
	assert.Equal(t, []string{"ID", "NAME", "COMPANY", "TYPE", "QUESTIONS"}, rows[0])
}

func TestSummary(t *testing.T) {
	cat := catalog.Default()

	now := time.Date(2024, 1, 16, 9, 0, 0, 0, time.UTC)

	got := Summary(cat.Find(catalog.Filter{}), now)

	assert.Equal(t, "6 interviews · average rating 4.1 · 3 this week", got)
	assert.Equal(t, "0 interviews · average rating 0.0 · 0 this week", Summary(nil, now))
}
