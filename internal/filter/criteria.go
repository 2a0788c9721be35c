package filter

import (
	"github.com/docker/docker/api/types/events"
	"github.com/docker/docker/api/types/filters"
)

// Format selects how rendered events are written to stdout.
type Format string

const (
	FormatPlain Format = "plain"
	FormatJSON  Format = "json"
)

func (f Format) IsValid() bool {
	switch f {
	case FormatPlain, FormatJSON:
		return true
	}
	return false
}

// containerActions is the set of container lifecycle actions the daemon
// emits and that --event-type accepts. health_status arrives from the
// daemon as "health_status: healthy" etc.; the daemon's event filter
// matches the bare token by prefix.
var containerActions = map[events.Action]struct{}{
	"attach":        {},
	"commit":        {},
	"copy":          {},
	"create":        {},
	"destroy":       {},
	"detach":        {},
	"die":           {},
	"exec_create":   {},
	"exec_die":      {},
	"exec_start":    {},
	"export":        {},
	"health_status": {},
	"kill":          {},
	"mount":         {},
	"oom":           {},
	"pause":         {},
	"rename":        {},
	"resize":        {},
	"restart":       {},
	"start":         {},
	"stop":          {},
	"top":           {},
	"unmount":       {},
	"unpause":       {},
	"update":        {},
}

// Criteria is a validated, normalized snapshot of the user's filter
// options. Since and Until hold the daemon's seconds[.nanoseconds] form;
// empty fields mean no constraint on that dimension. A Criteria never
// changes after Resolve returns it: the subscription takes it as a
// fixed snapshot.
type Criteria struct {
	Container string
	EventType events.Action
	Since     string
	Until     string
	Format    Format
}

// Args translates the criteria into the daemon's native filter
// expression. Filters are conjunctive; absent fields contribute no
// constraint.
func (c *Criteria) Args() filters.Args {
	args := filters.NewArgs()
	if c.Container != "" {
		args.Add("container", c.Container)
	}
	if c.EventType != "" {
		args.Add("event", string(c.EventType))
	}
	return args
}
