// package formatter provides functions to export resolved tracks to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/amdecker/tapedeck/internal/models"
)

// FormatDuration renders whole seconds as m:ss for display.
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// ToCSV converts resolved tracks to CSV with columns: SpotifyID, Song, Artist, Album, Duration
func ToCSV(tracks []models.Track) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"SpotifyID", "Song", "Artist", "Album", "Duration"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, track := range tracks {
		record := []string{
			track.SpotifyID,
			track.SongName,
			track.Artist,
			track.AlbumName,
			strconv.Itoa(track.Duration),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ToMarkdown converts resolved tracks to a Markdown table.
func ToMarkdown(tracks []models.Track) []byte {
	var buf bytes.Buffer

	buf.WriteString("| # | Song | Artist | Album | Duration |\n")
	buf.WriteString("|---|------|--------|-------|----------|\n")

	for i, track := range tracks {
		buf.WriteString(fmt.Sprintf("| %d | %s | %s | %s | %s |\n",
			i+1, track.SongName, track.Artist, track.AlbumName, FormatDuration(track.Duration)))
	}

	return buf.Bytes()
}

// ToText converts resolved tracks to a numbered plain-text listing.
func ToText(tracks []models.Track) []byte {
	var buf bytes.Buffer

	for i, track := range tracks {
		buf.WriteString(fmt.Sprintf("%d. %s • %s (%s)", i+1, track.SongName, track.Artist, FormatDuration(track.Duration)))
		if track.AlbumName != "" {
			buf.WriteString(fmt.Sprintf(" [%s]", track.AlbumName))
		}
		buf.WriteString("\n")
	}

	return buf.Bytes()
}
