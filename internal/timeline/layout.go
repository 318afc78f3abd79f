// Package timeline computes the day-view geometry: vertical placement of
// events on a 24-hour track, side-by-side columns for overlapping events,
// hit testing, and the now-indicator position. It is a pure transformation
// layer with no knowledge of storage or rendering.
package timeline

import (
	"sort"

	"github.com/asm2526/schedule-manager-app/internal/logger"
)

// Event is one scheduled item on the rendered day, with its time-of-day
// extent in minutes since midnight.
type Event struct {
	ID       int64
	Title    string
	StartMin int
	EndMin   int
}

// Block is one render rectangle produced by Layout, tagged with the event
// it was derived from. Coordinates are in pixels; the Y axis grows
// downward from midnight at 0.
type Block struct {
	EventID   int64   `json:"event_id"`
	Title     string  `json:"title"`
	TimeRange string  `json:"time_range"`
	X1        float64 `json:"x1"`
	Y1        float64 `json:"y1"`
	X2        float64 `json:"x2"`
	Y2        float64 `json:"y2"`
}

// Layout converts one day's events into render rectangles.
//
// Events are sorted by start minute (ties by id), then grouped into
// maximal runs of transitively overlapping events: an event joins the open
// cluster unless it starts at or after the latest end seen so far in that
// cluster. A cluster of k events splits the track into k equal-width
// columns, assigned in sorted order. Vertically, one hour maps to
// PixelsPerHour pixels, with a minimum block height so near-zero-duration
// events stay visible and clickable.
//
// Events with an invalid extent are skipped with a warning rather than
// failing the whole day; an end past midnight is clamped to day end.
func Layout(events []Event, cfg Config) []Block {
	kept := make([]Event, 0, len(events))
	for _, ev := range events {
		if ev.EndMin > minutesPerDay {
			ev.EndMin = minutesPerDay
		}
		if ev.StartMin < 0 || ev.StartMin >= minutesPerDay || ev.EndMin <= ev.StartMin {
			logger.Log.Warnw("skipping event with invalid time extent",
				"event_id", ev.ID,
				"start_minute", ev.StartMin,
				"end_minute", ev.EndMin,
			)
			continue
		}
		kept = append(kept, ev)
	}

	sort.Slice(kept, func(i, j int) bool {
		if kept[i].StartMin != kept[j].StartMin {
			return kept[i].StartMin < kept[j].StartMin
		}
		return kept[i].ID < kept[j].ID
	})

	blocks := make([]Block, 0, len(kept))
	for i := 0; i < len(kept); {
		// Grow the cluster while the next event starts before the
		// latest end seen so far; this makes overlap transitive.
		j := i
		clusterEnd := kept[i].EndMin
		for j+1 < len(kept) && kept[j+1].StartMin < clusterEnd {
			j++
			if kept[j].EndMin > clusterEnd {
				clusterEnd = kept[j].EndMin
			}
		}

		cluster := kept[i : j+1]
		colWidth := (cfg.TrackRight - cfg.TrackLeft) / float64(len(cluster))
		for col, ev := range cluster {
			top := float64(ev.StartMin) / 60 * cfg.PixelsPerHour
			bottom := float64(ev.EndMin) / 60 * cfg.PixelsPerHour
			if bottom-top < cfg.MinBlockHeight {
				bottom = top + cfg.MinBlockHeight
			}
			blocks = append(blocks, Block{
				EventID:   ev.ID,
				Title:     ev.Title,
				TimeRange: FormatClock12(ev.StartMin) + " - " + FormatClock12(ev.EndMin),
				X1:        cfg.TrackLeft + float64(col)*colWidth,
				Y1:        top,
				X2:        cfg.TrackLeft + float64(col+1)*colWidth,
				Y2:        bottom,
			})
		}
		i = j + 1
	}
	return blocks
}

// HitTest returns the event id of the topmost block containing the point,
// or false if the point hits no block. Blocks later in the slice are drawn
// on top of earlier ones.
func HitTest(blocks []Block, x, y float64) (int64, bool) {
	for i := len(blocks) - 1; i >= 0; i-- {
		b := blocks[i]
		if x >= b.X1 && x < b.X2 && y >= b.Y1 && y < b.Y2 {
			return b.EventID, true
		}
	}
	return 0, false
}
