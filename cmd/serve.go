package main

import (
	"context"

	"github.com/amdecker/tapedeck/internal/server"
	"github.com/urfave/cli/v3"
)

// Serve runs the HTTP service until interrupted.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	if err := r.reloadConfig(cmd.String("config")); err != nil {
		return err
	}

	if host := cmd.String("host"); host != "" {
		r.config.Server.Host = host
	}
	if port := cmd.Int("port"); port != 0 {
		r.config.Server.Port = int(port)
	}

	if r.config.Credentials.Spotify.ClientID == "" || r.config.Credentials.Spotify.ClientSecret == "" {
		r.logger.Warn("Spotify credentials not configured; search requests will fail until SPOTIFY_CLIENT_ID and SPOTIFY_CLIENT_SECRET are set")
	}

	srv := server.NewServer(r.config.Server.Addr(), r.trackResolver(), r.logger)
	return srv.Run()
}
