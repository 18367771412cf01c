package main

import (
	"context"

	"github.com/amdecker/tapedeck/internal/shared"
	"github.com/urfave/cli/v3"
)

// ConfigInit writes a starter configuration file from the embedded example.
func (r *Runner) ConfigInit(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("output")

	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}

	r.logger.Info("config file created", "path", path)
	return r.writePlain("✓ Wrote %s. Fill in your Spotify credentials or export SPOTIFY_CLIENT_ID / SPOTIFY_CLIENT_SECRET\n", path)
}
