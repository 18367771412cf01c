// Package ui implements the interactive candidate picker using bubbletea's Elm architecture.
//
// When a resolution is ambiguous the resolver returns every candidate in
// catalog order and leaves selection to the caller. The CLI is such a
// caller: `tapedeck resolve --interactive` opens a single-view list of the
// candidates and returns the one the user picks.
//
// The [Model] implements bubbletea's standard Init/Update/View pattern.
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, q) with
// contextual help displayed via charmbracelet/bubbles/help.
package ui
