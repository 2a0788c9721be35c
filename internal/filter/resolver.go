package filter

import (
	"strconv"
	"strings"
	"time"

	"github.com/docker/docker/api/types/events"
	timetypes "github.com/docker/docker/api/types/time"

	"github.com/auto-dns/docker-event-tap/internal/config"
)

// Resolve validates the raw filter options and normalizes them into a
// Criteria. All validation happens here, before any daemon connection is
// attempted; an unusable option fails the whole invocation.
func Resolve(cfg *config.FilterConfig) (*Criteria, error) {
	criteria := &Criteria{
		Container: cfg.Container,
		Format:    FormatPlain,
	}

	if cfg.Format != "" {
		format := Format(strings.ToLower(cfg.Format))
		if !format.IsValid() {
			return nil, NewInvalidArgumentError("format", cfg.Format, "must be plain or json")
		}
		criteria.Format = format
	}

	if cfg.EventType != "" {
		action := events.Action(cfg.EventType)
		if _, ok := containerActions[action]; !ok {
			return nil, NewInvalidArgumentError("event-type", cfg.EventType, "unknown event type")
		}
		criteria.EventType = action
	}

	// Both bounds resolve against the same reference instant so relative
	// durations stay comparable.
	now := time.Now()
	if cfg.Since != "" {
		ts, err := timetypes.GetTimestamp(cfg.Since, now)
		if err != nil {
			return nil, NewInvalidArgumentError("since", cfg.Since, "not a timestamp or duration")
		}
		criteria.Since = ts
	}
	if cfg.Until != "" {
		ts, err := timetypes.GetTimestamp(cfg.Until, now)
		if err != nil {
			return nil, NewInvalidArgumentError("until", cfg.Until, "not a timestamp or duration")
		}
		criteria.Until = ts
	}
	if criteria.Since != "" && criteria.Until != "" &&
		timestampAfter(criteria.Since, criteria.Until) {
		return nil, NewInvalidArgumentError("since", cfg.Since, "window starts after --until")
	}

	return criteria, nil
}

// timestampAfter reports whether normalized seconds[.nanoseconds]
// timestamp a is strictly after b.
func timestampAfter(a, b string) bool {
	aSec, aNano := timestampParts(a)
	bSec, bNano := timestampParts(b)
	if aSec != bSec {
		return aSec > bSec
	}
	return aNano > bNano
}

// timestampParts splits a normalized seconds[.nanoseconds] timestamp.
func timestampParts(ts string) (int64, int64) {
	seconds, nanos, _ := strings.Cut(ts, ".")
	sec, err := strconv.ParseInt(seconds, 10, 64)
	if err != nil {
		return 0, 0
	}
	var nano int64
	if nanos != "" {
		nano, _ = strconv.ParseInt(nanos, 10, 64)
	}
	return sec, nano
}
