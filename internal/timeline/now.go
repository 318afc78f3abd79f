package timeline

import (
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
)

// NowLineY maps a wall-clock time to the vertical position of the
// now-indicator. It is a pure function; callers pass the current time.
func NowLineY(t time.Time, pixelsPerHour float64) float64 {
	hours := float64(t.Hour()) + float64(t.Minute())/60 + float64(t.Second())/3600
	return hours * pixelsPerHour
}

// NowTicker keeps the now-indicator position fresh on a fixed interval
// without re-running the day layout. It owns its schedule and is torn
// down with Stop, so no refresh callback outlives its owner.
type NowTicker struct {
	cron *cron.Cron
	pph  float64
	now  func() time.Time
	bits atomic.Uint64
}

// NewNowTicker returns a ticker that refreshes every interval. The
// position is computed once immediately so Y is valid before Start.
func NewNowTicker(every time.Duration, pixelsPerHour float64) (*NowTicker, error) {
	t := &NowTicker{
		pph: pixelsPerHour,
		now: time.Now,
	}
	t.refresh()

	c := cron.New()
	if _, err := c.AddFunc(fmt.Sprintf("@every %s", every), t.refresh); err != nil {
		return nil, err
	}
	t.cron = c
	return t, nil
}

// Start begins the periodic refresh.
func (t *NowTicker) Start() {
	t.cron.Start()
}

// Stop cancels the periodic refresh. It does not block on an in-flight
// refresh; the refresh itself is a few arithmetic operations.
func (t *NowTicker) Stop() {
	t.cron.Stop()
}

// Y returns the most recently computed now-line position.
func (t *NowTicker) Y() float64 {
	return math.Float64frombits(t.bits.Load())
}

func (t *NowTicker) refresh() {
	t.bits.Store(math.Float64bits(NowLineY(t.now(), t.pph)))
}
