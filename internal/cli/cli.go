package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"example.com/interrogation/internal/game"
	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"
)

// LineReader is the part of liner.State the prompt loop needs.
type LineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

// CLI manages all command-line interactions.
type CLI struct {
	log *logrus.Logger
	in  LineReader
	out io.Writer
}

// NewCLI creates a console shell reading from the terminal. The returned close
// function restores the terminal and must be called.
func NewCLI(log *logrus.Logger) (*CLI, func() error) {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return &CLI{log: log, in: line, out: os.Stdout}, line.Close
}

// NewCLIWith creates a shell over any line source, e.g. a scripted one.
func NewCLIWith(log *logrus.Logger, in LineReader, out io.Writer) *CLI {
	return &CLI{log: log, in: in, out: out}
}

// Run drives the engine until the player quits. Each turn runs to completion
// before the next line is read.
func (c *CLI) Run(ctx context.Context, engine game.Engine) error {
	C.Header.Fprintln(c.out, "\n--- AI Detective ---")
	c.show(engine.StartGame())

	for {
		input, err := c.in.Prompt("> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				C.Info.Fprintln(c.out, "\nGoodbye!")
				return nil
			}
			return fmt.Errorf("error reading line: %w", err)
		}
		trimmed := strings.TrimSpace(input)
		if trimmed != "" {
			c.in.AppendHistory(trimmed)
		}

		switch strings.ToLower(trimmed) {
		case "quit", "exit":
			C.Info.Fprintln(c.out, "Goodbye!")
			return nil
		case "restart":
			c.show(engine.StartGame())
			continue
		}

		if err := ctx.Err(); err != nil {
			return err
		}
		c.show(engine.ProcessTurn(ctx, input))
	}
}

func (c *CLI) show(msg string) {
	if strings.HasPrefix(msg, "⚠️") {
		C.Warn.Fprintln(c.out, msg)
		return
	}
	C.Prompt.Fprintln(c.out, msg)
}
