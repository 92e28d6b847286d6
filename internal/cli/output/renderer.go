// Package output renders command results for the contacts CLI.
//
// Text mode prints the assistant's replies verbatim. Table and JSON modes
// render contact and birthday listings as structured output. Styling is
// applied only when stdout is a terminal.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/contacts/internal/contact"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Mode selects how listings are rendered.
type Mode string

// Output modes.
const (
	ModeText  Mode = "text"
	ModeTable Mode = "table"
	ModeJSON  Mode = "json"
)

// Renderer writes replies and listings.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
	isTTY  bool
	styles *Styles
}

// NewRenderer creates a renderer, detecting whether out is a terminal.
// NO_COLOR and CLICOLOR=0 turn styling off.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	return NewRendererWithTTY(out, errOut, IsTerminal(out) && !termenv.EnvNoColor(), mode)
}

// NewRendererWithTTY creates a renderer with an explicit terminal flag.
func NewRendererWithTTY(out, errOut io.Writer, isTTY bool, mode Mode) *Renderer {
	switch mode {
	case ModeText, ModeTable, ModeJSON:
	default:
		mode = ModeText
	}
	return &Renderer{
		out:    out,
		errOut: errOut,
		mode:   mode,
		isTTY:  isTTY,
		styles: DefaultStyles(),
	}
}

// IsTerminal reports whether w is an *os.File attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Mode returns the rendering mode.
func (r *Renderer) Mode() Mode {
	return r.mode
}

// Writer returns the primary output.
func (r *Renderer) Writer() io.Writer {
	return r.out
}

// Println writes s followed by a newline.
func (r *Renderer) Println(s string) {
	_, _ = fmt.Fprintln(r.out, s)
}

// Success writes a reply to a command that succeeded.
func (r *Renderer) Success(s string) {
	if r.isTTY {
		s = r.styles.Success.Render(s)
	}
	r.Println(s)
}

// Error writes a user-facing error reply to the error output.
func (r *Renderer) Error(s string) {
	if r.isTTY {
		s = r.styles.Error.Render(s)
	}
	_, _ = fmt.Fprintln(r.errOut, s)
}

type contactView struct {
	Name     string   `json:"name"`
	Phones   []string `json:"phones"`
	Birthday string   `json:"birthday,omitempty"`
}

type birthdayView struct {
	Name string `json:"name"`
	Date string `json:"date"`
}

func newContactView(rec *contact.Record) contactView {
	v := contactView{Name: rec.Name, Phones: make([]string, len(rec.Phones))}
	for i, p := range rec.Phones {
		v.Phones[i] = p.String()
	}
	if rec.Birthday != nil {
		v.Birthday = rec.Birthday.String()
	}
	return v
}

// Contacts renders records as a table or JSON array.
func (r *Renderer) Contacts(records []*contact.Record) error {
	views := make([]contactView, len(records))
	for i, rec := range records {
		views[i] = newContactView(rec)
	}

	if r.mode == ModeJSON {
		return r.json(views)
	}

	rows := make([]table.Row, len(views))
	for i, v := range views {
		rows[i] = table.Row{r.name(v.Name), strings.Join(v.Phones, ", "), v.Birthday}
	}
	r.table(table.Row{"Name", "Phones", "Birthday"}, rows)
	return nil
}

// Birthdays renders upcoming birthdays as a table or JSON array.
func (r *Renderer) Birthdays(upcoming []contact.Upcoming) error {
	views := make([]birthdayView, len(upcoming))
	for i, u := range upcoming {
		views[i] = birthdayView{Name: u.Record.Name, Date: u.Date.Format(contact.DateLayout)}
	}

	if r.mode == ModeJSON {
		return r.json(views)
	}

	rows := make([]table.Row, len(views))
	for i, v := range views {
		rows[i] = table.Row{r.name(v.Name), v.Date}
	}
	r.table(table.Row{"Name", "Date"}, rows)
	return nil
}

func (r *Renderer) name(s string) string {
	if r.isTTY {
		return r.styles.Name.Render(s)
	}
	return s
}

func (r *Renderer) table(header table.Row, rows []table.Row) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(header)
	t.AppendRows(rows)
	t.Render()

	footer := fmt.Sprintf("(%d rows)", len(rows))
	if r.isTTY {
		footer = r.styles.Muted.Render(footer)
	}
	r.Println(footer)
}

func (r *Renderer) json(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
