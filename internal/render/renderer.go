package render

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/docker/docker/api/types/events"

	"github.com/auto-dns/docker-event-tap/internal/filter"
)

// Renderer writes one delivered event to the output stream. The record
// stays opaque: renderers serialize or print it, they never interpret
// field semantics.
type Renderer interface {
	Render(events.Message) error
}

// New returns the renderer for the requested output format.
func New(format filter.Format, out io.Writer) (Renderer, error) {
	switch format {
	case filter.FormatJSON:
		return &JSONRenderer{out: out}, nil
	case filter.FormatPlain:
		return &PlainRenderer{out: out}, nil
	}
	return nil, fmt.Errorf("no renderer for format %q", format)
}

// validate rejects records the daemon delivered without any identifying
// type or action; nothing useful can be printed for them.
func validate(msg events.Message) error {
	if msg.Type == "" && msg.Action == "" {
		return NewMalformedRecordError(msg)
	}
	return nil
}

// JSONRenderer emits one self-contained JSON object per line, written
// out immediately, so the stream stays incrementally consumable.
type JSONRenderer struct {
	out io.Writer
}

func (r *JSONRenderer) Render(msg events.Message) error {
	if err := validate(msg); err != nil {
		return err
	}
	line, err := json.Marshal(msg)
	if err != nil {
		return NewMalformedRecordError(msg)
	}
	if _, err := r.out.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("writing event: %w", err)
	}
	return nil
}

// PlainRenderer emits one human-readable line per event: timestamp,
// type, action, subject and the actor attributes in sorted order.
type PlainRenderer struct {
	out io.Writer
}

func (r *PlainRenderer) Render(msg events.Message) error {
	if err := validate(msg); err != nil {
		return err
	}
	var b strings.Builder
	b.WriteString(timestamp(msg).Format(time.RFC3339Nano))
	b.WriteByte(' ')
	b.WriteString(string(msg.Type))
	b.WriteByte(' ')
	b.WriteString(string(msg.Action))
	if msg.Actor.ID != "" {
		b.WriteByte(' ')
		b.WriteString(msg.Actor.ID)
	}
	for _, k := range sortedKeys(msg.Actor.Attributes) {
		fmt.Fprintf(&b, " %s=%s", k, msg.Actor.Attributes[k])
	}
	b.WriteByte('\n')
	if _, err := io.WriteString(r.out, b.String()); err != nil {
		return fmt.Errorf("writing event: %w", err)
	}
	return nil
}

func timestamp(msg events.Message) time.Time {
	if msg.TimeNano != 0 {
		return time.Unix(0, msg.TimeNano)
	}
	return time.Unix(msg.Time, 0)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
