package formatter

import (
	"strings"
	"testing"

	"github.com/amdecker/tapedeck/internal/models"
)

var sampleTracks = []models.Track{
	{SpotifyID: "t1", SongName: "Kid A", Artist: "Radiohead", AlbumName: "Kid A", Duration: 284},
	{SpotifyID: "t2", SongName: "Hurt", Artist: "Johnny Cash", AlbumName: "American IV", Duration: 216},
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds  int
		expected string
	}{
		{0, "0:00"},
		{59, "0:59"},
		{60, "1:00"},
		{216, "3:36"},
		{600, "10:00"},
		{-5, "0:00"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.seconds); got != tt.expected {
			t.Errorf("FormatDuration(%d): expected %s, got %s", tt.seconds, tt.expected, got)
		}
	}
}

func TestToCSV(t *testing.T) {
	data, err := ToCSV(sampleTracks)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus two records, got %d lines", len(lines))
	}
	if lines[0] != "SpotifyID,Song,Artist,Album,Duration" {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if lines[1] != "t1,Kid A,Radiohead,Kid A,284" {
		t.Errorf("unexpected record: %s", lines[1])
	}

	t.Run("quotes fields containing commas", func(t *testing.T) {
		data, err := ToCSV([]models.Track{{SpotifyID: "t1", SongName: "x", Artist: "Frank Sinatra, Count Basie"}})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(string(data), `"Frank Sinatra, Count Basie"`) {
			t.Errorf("expected quoted artist field: %s", data)
		}
	})

	t.Run("empty input yields only the header", func(t *testing.T) {
		data, err := ToCSV(nil)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if strings.TrimSpace(string(data)) != "SpotifyID,Song,Artist,Album,Duration" {
			t.Errorf("unexpected output: %s", data)
		}
	})
}

func TestToMarkdown(t *testing.T) {
	lines := strings.Split(strings.TrimSpace(string(ToMarkdown(sampleTracks))), "\n")

	if len(lines) != 4 {
		t.Fatalf("expected four lines, got %d", len(lines))
	}
	if lines[0] != "| # | Song | Artist | Album | Duration |" {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if lines[2] != "| 1 | Kid A | Radiohead | Kid A | 4:44 |" {
		t.Errorf("unexpected row: %s", lines[2])
	}
	if lines[3] != "| 2 | Hurt | Johnny Cash | American IV | 3:36 |" {
		t.Errorf("unexpected row: %s", lines[3])
	}
}

func TestToText(t *testing.T) {
	lines := strings.Split(strings.TrimSpace(string(ToText(sampleTracks))), "\n")

	if len(lines) != 2 {
		t.Fatalf("expected two lines, got %d", len(lines))
	}
	if lines[0] != "1. Kid A • Radiohead (4:44) [Kid A]" {
		t.Errorf("unexpected line: %s", lines[0])
	}

	t.Run("omits the album suffix when blank", func(t *testing.T) {
		out := string(ToText([]models.Track{{SongName: "Song", Artist: "Artist", Duration: 61}}))
		if strings.TrimSpace(out) != "1. Song • Artist (1:01)" {
			t.Errorf("unexpected output: %q", out)
		}
	})
}
