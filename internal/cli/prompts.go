package cli

import (
	"io"

	"example.com/interrogation/internal/records"
	"example.com/interrogation/internal/scenario"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// C holds pre-configured color objects for printing to the console.
var C = struct {
	Yes, No, Info, Warn, Header, Prompt, Debug *color.Color
}{
	Yes:    color.New(color.FgGreen),
	No:     color.New(color.FgRed),
	Info:   color.New(color.FgCyan),
	Warn:   color.New(color.FgHiYellow),
	Header: color.New(color.FgWhite, color.Bold),
	Prompt: color.New(color.FgHiWhite),
	Debug:  color.New(color.FgMagenta),
}

// PartyColors gives each suspect a fixed color.
var PartyColors = map[scenario.Party]*color.Color{
	scenario.PartyA: color.New(color.FgYellow),
	scenario.PartyB: color.New(color.FgBlue),
}

// ColorizeParty returns the party name colored.
func ColorizeParty(p scenario.Party) string {
	if c, ok := PartyColors[p]; ok {
		return c.Sprint(p.String())
	}
	return p.String()
}

// RenderRecords lists saved games, oldest first.
func RenderRecords(w io.Writer, rs []records.Record) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Saved Games")
	t.AppendHeader(table.Row{"#", "ID", "Time", "Mode", "Lang", "Difficulty", "Questions", "Outcome"})
	for i, r := range rs {
		id := r.ID
		if len(id) > 8 {
			id = id[:8]
		}
		t.AppendRow(table.Row{
			i + 1,
			id,
			r.Timestamp.Local().Format("2006-01-02 15:04:05"),
			r.Mode,
			r.Lang,
			r.Difficulty,
			r.Questions,
			outcome(r),
		})
	}
	t.AppendFooter(table.Row{"", "", "", "", "", "", "Total", len(rs)})
	t.SetStyle(table.StyleRounded)
	t.Style().Title.Align = text.AlignCenter
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 1, Align: text.AlignRight}})
	t.Render()
}

func outcome(r records.Record) string {
	switch {
	case r.Mode == records.ModeDetective && r.Success:
		return C.Yes.Sprint("solved")
	case r.Mode == records.ModeDetective:
		return C.No.Sprintf("missed (%s)", r.Culprit)
	case r.Success:
		return C.Yes.Sprint("fooled the detective")
	default:
		return C.No.Sprintf("caught (%s)", r.AIVerdict)
	}
}
