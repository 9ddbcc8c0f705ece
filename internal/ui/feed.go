package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Crater-Duel/internal/game"
)

const (
	feedPanelWidth = 320
	feedMaxEntries = 60
	feedLineHeight = 15
	feedTitleH     = 18
)

var (
	feedPanelFill = color.RGBA{R: 10, G: 12, B: 10, A: 248}
	feedTitleFill = color.RGBA{R: 20, G: 30, B: 20, A: 255}
	feedSeparator = color.RGBA{R: 50, G: 70, B: 50, A: 255}
	feedRecentRow = color.RGBA{R: 30, G: 40, B: 30, A: 160}
	feedText      = color.RGBA{R: 220, G: 220, B: 220, A: 255}
	feedOldText   = color.RGBA{R: 140, G: 140, B: 140, A: 255}
	feedMatchDot  = color.RGBA{R: 200, G: 200, B: 200, A: 255}
)

// EventFeed is a ring buffer of match log entries rendered beside the field.
type EventFeed struct {
	entries []game.LogEntry
	head    int
	count   int
}

// NewEventFeed creates a feed with a fixed capacity.
func NewEventFeed() *EventFeed {
	return &EventFeed{
		entries: make([]game.LogEntry, feedMaxEntries),
	}
}

// Add appends an entry, overwriting the oldest once full.
func (ef *EventFeed) Add(e game.LogEntry) {
	ef.entries[ef.head] = e
	ef.head = (ef.head + 1) % feedMaxEntries
	if ef.count < feedMaxEntries {
		ef.count++
	}
}

// Clear drops every entry.
func (ef *EventFeed) Clear() {
	ef.head, ef.count = 0, 0
}

// Recent returns entries in chronological order (oldest first).
func (ef *EventFeed) Recent() []game.LogEntry {
	result := make([]game.LogEntry, ef.count)
	for i := 0; i < ef.count; i++ {
		idx := (ef.head - ef.count + i + feedMaxEntries) % feedMaxEntries
		result[i] = ef.entries[idx]
	}
	return result
}

// feedLine formats an entry for the narrow panel.
func feedLine(e game.LogEntry) string {
	return fmt.Sprintf("%4d %-2s %s/%s %s", e.Tick, e.Combatant, e.Category, e.Key, e.Value)
}

// dotColor maps a combatant label to its seat colour.
func dotColor(label string) color.RGBA {
	var seat int
	if _, err := fmt.Sscanf(label, "P%d", &seat); err != nil || seat < 1 || seat > game.MaxPlayers {
		return feedMatchDot
	}
	return game.CombatantColors[seat-1]
}

// Draw renders the feed panel to the right of the field, newest at the bottom.
func (ef *EventFeed) Draw(screen *ebiten.Image, panelX, panelH int) {
	px, pw, ph := float32(panelX), float32(feedPanelWidth), float32(panelH)
	vector.FillRect(screen, px, 0, pw, ph, feedPanelFill, false)
	vector.StrokeLine(screen, px, 0, px, ph, 1, feedSeparator, false)
	vector.FillRect(screen, px, 0, pw, feedTitleH, feedTitleFill, false)
	drawText(screen, "MATCH LOG", float64(panelX+8), 3, feedText)
	vector.StrokeLine(screen, px, feedTitleH, px+pw, feedTitleH, 1, feedSeparator, false)

	entries := ef.Recent()
	maxVisible := (panelH - feedTitleH - 6) / feedLineHeight
	if len(entries) > maxVisible {
		entries = entries[len(entries)-maxVisible:]
	}
	maxChars := (feedPanelWidth - 16) / hudCharW
	const recent = 3

	y := feedTitleH + 4
	for i, e := range entries {
		isRecent := i >= len(entries)-recent
		clr := feedOldText
		if isRecent {
			vector.FillRect(screen, px+2, float32(y), pw-4, feedLineHeight, feedRecentRow, false)
			clr = feedText
		}
		vector.FillRect(screen, px+4, float32(y+4), 3, 6, dotColor(e.Combatant), false)

		line := feedLine(e)
		if len(line) > maxChars {
			line = line[:maxChars]
		}
		drawText(screen, line, float64(panelX+12), float64(y+1), clr)
		y += feedLineHeight
	}
}
