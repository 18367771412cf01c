package main

import (
	"fmt"
	"io"
	"os"

	"github.com/amdecker/tapedeck/internal/resolver"
	"github.com/amdecker/tapedeck/internal/services"
	"github.com/amdecker/tapedeck/internal/shared"
	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config  *shared.Config
	catalog services.Catalog
	tracks  *resolver.Resolver
	api     *services.APIService
	logger  *log.Logger
	output  io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config  *shared.Config
	Catalog services.Catalog
	API     *services.APIService
	Logger  *log.Logger
	Output  io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	return &Runner{
		config:  opts.Config,
		catalog: opts.Catalog,
		api:     opts.API,
		logger:  opts.Logger,
		output:  opts.Output,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		serveCommand, resolveCommand, searchCommand, healthCommand, configCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// reloadConfig replaces the active config from the given path and discards
// any services built from the previous one.
func (r *Runner) reloadConfig(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil
	}

	config, err := shared.LoadConfig(path)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrInvalidConfig, err)
	}
	config.LoadEnv()

	r.config = config
	r.catalog = nil
	r.tracks = nil
	return nil
}

// catalogService lazily builds the Spotify catalog client.
func (r *Runner) catalogService() services.Catalog {
	if r.catalog == nil {
		r.catalog = services.NewSpotifyService(r.config.Credentials.Spotify, r.config.Catalog)
	}
	return r.catalog
}

// trackResolver lazily builds the resolver over the catalog client.
func (r *Runner) trackResolver() *resolver.Resolver {
	if r.tracks == nil {
		r.tracks = resolver.New(r.catalogService(), r.logger)
	}
	return r.tracks
}

// apiClient returns a client for a running tapedeck instance.
func (r *Runner) apiClient(baseURL string) *services.APIService {
	if r.api != nil {
		return r.api
	}
	return services.NewAPIService(baseURL, nil)
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	output, err := shared.MarshalJSON(data, pretty)
	if err != nil {
		return err
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
