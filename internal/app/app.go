package app

import (
	"context"
	"fmt"
	"os"

	dockerCli "github.com/docker/docker/client"
	"github.com/rs/zerolog"

	"github.com/auto-dns/docker-event-tap/internal/config"
	"github.com/auto-dns/docker-event-tap/internal/event"
	"github.com/auto-dns/docker-event-tap/internal/filter"
	"github.com/auto-dns/docker-event-tap/internal/render"
)

// App wires the resolved filter criteria to one event feed subscription
// and the stdout renderer.
type App struct {
	dockerClient *dockerCli.Client
	subscriber   *event.Subscriber
	renderer     render.Renderer
	logger       zerolog.Logger
}

// New creates a new App by wiring up all dependencies. Filter options
// are resolved first so that argument errors surface before any daemon
// connection is attempted.
func New(cfg *config.Config, logger zerolog.Logger) (*App, error) {
	criteria, err := filter.Resolve(&cfg.Filter)
	if err != nil {
		return nil, err
	}

	renderer, err := render.New(criteria.Format, os.Stdout)
	if err != nil {
		return nil, err
	}

	// Docker CLI
	dockerClient, err := dockerCli.NewClientWithOpts(dockerCli.FromEnv, dockerCli.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("failed to create docker client: %w", err)
	}

	return &App{
		dockerClient: dockerClient,
		subscriber:   event.NewSubscriber(dockerClient, criteria, logger),
		renderer:     renderer,
		logger:       logger,
	}, nil
}

// Run consumes the event feed until it ends or ctx is cancelled. Every
// successfully parsed record is emitted exactly once, in arrival order.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info().Msg("Attached to the Docker event stream")
	return a.subscriber.Stream(ctx, a.renderer.Render)
}

func (a *App) Close() error {
	if a.dockerClient != nil {
		if err := a.dockerClient.Close(); err != nil {
			return fmt.Errorf("close docker client: %w", err)
		}
	}
	return nil
}
