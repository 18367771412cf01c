package main

import (
	"context"
	"fmt"

	"github.com/amdecker/tapedeck/internal/models"
	"github.com/amdecker/tapedeck/internal/shared"
	"github.com/urfave/cli/v3"
)

// Search posts a track query to a running tapedeck server and prints the response.
func (r *Runner) Search(ctx context.Context, cmd *cli.Command) error {
	song := cmd.StringArg("song")
	if song == "" {
		return fmt.Errorf("%w: song name", shared.ErrMissingArgument)
	}

	api := r.apiClient(cmd.String("server"))
	query := models.TrackQuery{SongName: song, Artist: cmd.String("artist")}

	r.logger.Info("searching via server", "song", song, "artist", query.Artist)

	resp, err := api.SearchTrack(ctx, query)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d, body: %s", shared.ErrAPIRequest, resp.StatusCode, string(resp.Body))
	}

	if resp.IsJSON {
		return r.writeJSON(resp.JSONData, cmd.Bool("pretty"))
	}

	return r.writePlain("%s\n", resp.Body)
}

// Health checks a running tapedeck server's health endpoint.
func (r *Runner) Health(ctx context.Context, cmd *cli.Command) error {
	api := r.apiClient(cmd.String("server"))

	resp, err := api.Health(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d", shared.ErrAPIRequest, resp.StatusCode)
	}

	return r.writePlain("✓ server healthy: %s\n", resp.Body)
}
