package main

import (
	"context"
	"fmt"

	"github.com/amdecker/tapedeck/internal/formatter"
	"github.com/amdecker/tapedeck/internal/models"
	"github.com/amdecker/tapedeck/internal/shared"
	"github.com/amdecker/tapedeck/internal/ui"
	"github.com/urfave/cli/v3"
)

// Resolve runs a resolution directly against the catalog and prints the result.
func (r *Runner) Resolve(ctx context.Context, cmd *cli.Command) error {
	if err := r.reloadConfig(cmd.String("config")); err != nil {
		return err
	}

	song := cmd.StringArg("song")
	if song == "" {
		return fmt.Errorf("%w: song name", shared.ErrMissingArgument)
	}

	query := models.TrackQuery{SongName: song, Artist: cmd.String("artist")}
	r.logger.Info("resolving track", "song", song, "artist", query.Artist)

	res := r.trackResolver().Resolve(ctx, query)

	switch res.State {
	case models.ResolutionFailed:
		return fmt.Errorf("resolution failed: %w", res.Err)
	case models.ResolutionNotFound:
		return fmt.Errorf("%w: %q", shared.ErrTrackNotFound, song)
	case models.ResolvedSingle:
		return r.writeTracks(cmd, *res.Track)
	default:
		if cmd.Bool("interactive") {
			track, err := ui.Pick(res.Candidates)
			if err != nil {
				return err
			}
			if track == nil {
				return r.writePlain("No track selected.\n")
			}
			return r.writeTracks(cmd, *track)
		}

		return r.writeTracks(cmd, res.Candidates...)
	}
}

// writeTracks renders tracks in the format the command asked for.
func (r *Runner) writeTracks(cmd *cli.Command, tracks ...models.Track) error {
	switch format := cmd.String("format"); format {
	case "json":
		if len(tracks) == 1 {
			return r.writeJSON(tracks[0], cmd.Bool("pretty"))
		}
		return r.writeJSON(tracks, cmd.Bool("pretty"))
	case "csv":
		data, err := formatter.ToCSV(tracks)
		if err != nil {
			return err
		}
		return r.writePlain("%s", data)
	case "markdown", "md":
		return r.writePlain("%s", formatter.ToMarkdown(tracks))
	case "text", "":
		return r.writePlain("%s", formatter.ToText(tracks))
	default:
		return fmt.Errorf("%w: unknown format %q", shared.ErrInvalidInput, format)
	}
}
