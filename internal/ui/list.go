package ui

import (
	"fmt"

	"github.com/amdecker/tapedeck/internal/formatter"
	"github.com/amdecker/tapedeck/internal/models"
	"github.com/charmbracelet/bubbles/list"
)

var _ list.Item = trackItem{}

// trackItem wraps [models.Track] to implement [list.Item].
type trackItem struct {
	track models.Track
}

func (i trackItem) FilterValue() string { return i.track.SongName }
func (i trackItem) Title() string       { return i.track.SongName }
func (i trackItem) Description() string {
	desc := fmt.Sprintf("%s • %s", i.track.Artist, formatter.FormatDuration(i.track.Duration))
	if i.track.AlbumName != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.track.AlbumName)
	}
	return desc
}
