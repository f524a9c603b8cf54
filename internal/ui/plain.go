package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/Cyclone1070/termsearch/internal/session"
	"github.com/Cyclone1070/termsearch/internal/ui/services"
	"github.com/Cyclone1070/termsearch/internal/ui/views"
)

const plainWidth = 80

// RunPlain drives a session one line at a time, for pipes and terminals
// without alt-screen support. It prints the entries each line produces and
// returns when in is exhausted or ctx is cancelled. Markdown entries are
// rendered down to plain text.
func RunPlain(ctx context.Context, in io.Reader, out io.Writer, sess LineSession) error {
	opts := views.HistoryOptions{
		Width:    plainWidth,
		DotCount: 3,
		Markdown: true,
		Renderer: services.NewPlainRenderer(),
	}

	prev := sess.Snapshot().Entries
	if err := printEntries(out, prev, opts); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := sess.Execute(ctx, scanner.Text()); err != nil {
			if errors.Is(err, session.ErrEmptyInput) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}

		entries := sess.Snapshot().Entries
		if err := printEntries(out, newEntries(prev, entries), opts); err != nil {
			return err
		}
		prev = entries
	}
	return scanner.Err()
}

// newEntries returns what was added to the history since prev. A reset
// history is returned whole.
func newEntries(prev, cur []session.Entry) []session.Entry {
	reset := len(cur) < len(prev) ||
		(len(prev) > 0 && len(cur) > 0 && prev[0].EntryID() != cur[0].EntryID())
	if reset {
		return cur
	}
	return cur[len(prev):]
}

func printEntries(out io.Writer, entries []session.Entry, opts views.HistoryOptions) error {
	var shown []session.Entry
	for _, e := range entries {
		if _, ok := e.(session.UserEntry); ok {
			continue
		}
		shown = append(shown, e)
	}
	if len(shown) == 0 {
		return nil
	}
	_, err := fmt.Fprintln(out, views.FormatHistory(shown, opts))
	return err
}
