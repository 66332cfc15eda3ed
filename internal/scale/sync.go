package scale

import (
	"sync"

	"github.com/mazilong/tui.chart/internal/format"
	"github.com/mazilong/tui.chart/internal/models"
)

// Synchronizer makes the two y-axes of a dual-axis chart render the same
// number of gridlines
type Synchronizer struct {
	formats []format.Func
}

// NewSynchronizer creates a synchronizer that relabels grown axes with
// formats followed by the axis prefix and suffix
func NewSynchronizer(formats []format.Func) *Synchronizer {
	return &Synchronizer{formats: formats}
}

// Reconcile grows whichever axis has fewer ticks until both match. It never
// removes ticks, so labels the user already sees are kept.
func (s *Synchronizer) Reconcile(primary, secondary *models.AxisScaleData) {
	if primary == nil || secondary == nil {
		return
	}

	diff := secondary.TickCount - primary.TickCount
	switch {
	case diff > 0:
		s.increaseTickCount(diff, primary)
	case diff < 0:
		s.increaseTickCount(-diff, secondary)
	}
}

func (s *Synchronizer) increaseTickCount(increase int, data *models.AxisScaleData) {
	data.Limit.Max += data.Step * float64(increase)
	values := MakeLabelsFromLimit(data.Limit, data.Step)
	funcs := append(append([]format.Func(nil), s.formats...), format.Affix(data.Prefix, data.Suffix))
	data.Labels = format.Values(values, funcs)
	data.TickCount += increase
	data.ValidTickCount += increase
}

// AxesData holds the computed scales of one chart draw, keyed by axis name.
// The y-axis pair is only ever updated together under the lock.
type AxesData struct {
	mu   sync.Mutex
	axes map[string]*models.AxisScaleData
}

// NewAxesData creates an empty set
func NewAxesData() *AxesData {
	return &AxesData{axes: make(map[string]*models.AxisScaleData)}
}

// Set stores a copy of data under name
func (a *AxesData) Set(name string, data models.AxisScaleData) {
	a.mu.Lock()
	defer a.mu.Unlock()
	c := data.Clone()
	a.axes[name] = &c
}

// Get returns a copy of the named axis
func (a *AxesData) Get(name string) (models.AxisScaleData, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	d, ok := a.axes[name]
	if !ok {
		return models.AxisScaleData{}, false
	}
	return d.Clone(), true
}

// Snapshot returns copies of every axis
func (a *AxesData) Snapshot() map[string]models.AxisScaleData {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make(map[string]models.AxisScaleData, len(a.axes))
	for name, d := range a.axes {
		out[name] = d.Clone()
	}
	return out
}

// Sync reconciles the yAxis and rightYAxis scales. It returns false when the
// chart has only one y-axis.
func (a *AxesData) Sync(s *Synchronizer) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	primary, ok := a.axes[models.YAxisName]
	if !ok {
		return false
	}
	secondary, ok := a.axes[models.RightYAxisName]
	if !ok {
		return false
	}
	s.Reconcile(primary, secondary)
	return true
}
