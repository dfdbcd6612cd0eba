package cli

import (
	"io"
	"strings"

	"example.com/interrogation/internal/events"
	"example.com/interrogation/internal/scenario"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Renderer implements the events.Listener interface to draw the details the
// session messages leave out.
type Renderer struct {
	out io.Writer
}

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// HandleEvent is the central dispatcher for rendering events.
func (r *Renderer) HandleEvent(e events.Event) {
	switch event := e.(type) {
	case events.CardPlayedEvent:
		C.Debug.Fprintf(r.out, "🎴 %s card played\n", event.Card)
	case events.AnalysisEvent:
		r.renderAnalysis(event)
	case events.VerdictEvent:
		r.renderVerdict(event)
	}
}

func (r *Renderer) renderAnalysis(event events.AnalysisEvent) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetTitle("Suspicion")
	t.AppendHeader(table.Row{"Suspect", "Score", "Reasons"})
	for _, p := range scenario.Parties {
		name := ColorizeParty(p)
		if p == event.Suggestion {
			name += " ◀"
		}
		t.AppendRow(table.Row{name, event.Scores[p], strings.Join(event.Reasons[p], "; ")})
	}
	if len(event.Contradictions) > 0 {
		t.AppendFooter(table.Row{"Contradictions", "", strings.Join(event.Contradictions, "; ")})
	}
	t.SetStyle(table.StyleLight)
	t.Style().Title.Align = text.AlignCenter
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, WidthMax: 60},
	})
	t.Render()
}

func (r *Renderer) renderVerdict(event events.VerdictEvent) {
	C.Header.Fprintln(r.out, "\n--- GAME OVER ---")
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.AppendRows([]table.Row{
		{"Mode", event.Mode},
		{"Verdict", event.Verdict},
		{"Truth", event.Truth},
	})
	if event.Success {
		t.AppendRow(table.Row{"Result", C.Yes.Sprint("you win")})
	} else {
		t.AppendRow(table.Row{"Result", C.No.Sprint("you lose")})
	}
	if event.Err != nil {
		t.AppendRow(table.Row{"Record", C.Warn.Sprintf("not saved: %v", event.Err)})
	} else {
		t.AppendRow(table.Row{"Record", event.Location})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
}
