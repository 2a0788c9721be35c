package filter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/auto-dns/docker-event-tap/internal/config"
)

func TestResolveDefaults(t *testing.T) {
	criteria, err := Resolve(&config.FilterConfig{})

	require.NoError(t, err)
	require.Equal(t, FormatPlain, criteria.Format)
	require.Empty(t, criteria.Container)
	require.Empty(t, criteria.Since)
	require.Empty(t, criteria.Until)
	require.Equal(t, 0, criteria.Args().Len())
}

func TestResolveConjunction(t *testing.T) {
	criteria, err := Resolve(&config.FilterConfig{
		Container: "web",
		EventType: "die",
		Since:     "24h",
		Until:     "1h",
		Format:    "json",
	})

	require.NoError(t, err)
	require.Equal(t, FormatJSON, criteria.Format)

	args := criteria.Args()
	require.Equal(t, []string{"web"}, args.Get("container"))
	require.Equal(t, []string{"die"}, args.Get("event"))
	require.NotEmpty(t, criteria.Since)
	require.NotEmpty(t, criteria.Until)
}

func TestResolveFormatCaseInsensitive(t *testing.T) {
	criteria, err := Resolve(&config.FilterConfig{Format: "JSON"})

	require.NoError(t, err)
	require.Equal(t, FormatJSON, criteria.Format)
}

func TestResolveRejectsUnknownFormat(t *testing.T) {
	_, err := Resolve(&config.FilterConfig{Format: "yaml"})

	var invalid *InvalidArgumentError
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, "format", invalid.Option)
	require.Equal(t, "yaml", invalid.Value)
}

func TestResolveRejectsUnknownEventType(t *testing.T) {
	_, err := Resolve(&config.FilterConfig{EventType: "levitate"})

	var invalid *InvalidArgumentError
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, "event-type", invalid.Option)
}

func TestResolveRejectsMalformedSince(t *testing.T) {
	_, err := Resolve(&config.FilterConfig{Since: "notatime"})

	var invalid *InvalidArgumentError
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, "since", invalid.Option)
	require.Equal(t, "notatime", invalid.Value)
}

func TestResolveRejectsMalformedUntil(t *testing.T) {
	_, err := Resolve(&config.FilterConfig{Until: "soon-ish"})

	var invalid *InvalidArgumentError
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, "until", invalid.Option)
}

func TestResolveAcceptsAbsoluteWindow(t *testing.T) {
	criteria, err := Resolve(&config.FilterConfig{
		Since: "2024-01-01T00:00:00",
		Until: "2024-01-02T00:00:00",
	})

	require.NoError(t, err)
	require.NotEmpty(t, criteria.Since)
	require.NotEmpty(t, criteria.Until)
}

func TestResolveRejectsInvertedWindow(t *testing.T) {
	_, err := Resolve(&config.FilterConfig{
		Since: "2024-01-02T00:00:00",
		Until: "2024-01-01T00:00:00",
	})

	var invalid *InvalidArgumentError
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, "since", invalid.Option)
}

func TestResolveRejectsInvertedWindowWithinSecond(t *testing.T) {
	_, err := Resolve(&config.FilterConfig{
		Since: "2024-01-02T00:00:00.500",
		Until: "2024-01-02T00:00:00.100",
	})

	var invalid *InvalidArgumentError
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, "since", invalid.Option)
}

func TestResolveAcceptsEqualWindowBounds(t *testing.T) {
	_, err := Resolve(&config.FilterConfig{
		Since: "2024-01-02T00:00:00",
		Until: "2024-01-02T00:00:00",
	})

	require.NoError(t, err)
}

func TestResolveAcceptsHealthStatus(t *testing.T) {
	criteria, err := Resolve(&config.FilterConfig{EventType: "health_status"})

	require.NoError(t, err)
	require.Equal(t, []string{"health_status"}, criteria.Args().Get("event"))
}
