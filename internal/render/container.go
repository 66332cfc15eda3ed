// Package render mounts planned components and draws them with go-echarts
// (interactive HTML) or go-chart (static PNG).
package render

import (
	"fmt"
	"sync"

	"github.com/mazilong/tui.chart/internal/models"
)

var knownAxes = map[string]bool{
	models.YAxisName:      true,
	models.XAxisName:      true,
	models.RightYAxisName: true,
}

// Container holds the components mounted for one chart
type Container struct {
	mu         sync.RWMutex
	components []models.ComponentRequest
	byName     map[string]int
}

// NewContainer creates an empty container
func NewContainer() *Container {
	return &Container{byName: make(map[string]int)}
}

// Mount validates requests and replaces the mounted components with them
func (c *Container) Mount(requests []models.ComponentRequest) error {
	byName := make(map[string]int, len(requests))
	plots := 0

	for i, req := range requests {
		if req.Name == "" {
			return fmt.Errorf("component %d has no name", i)
		}
		if _, dup := byName[req.Name]; dup {
			return fmt.Errorf("component %q requested twice", req.Name)
		}

		switch req.Role {
		case models.RoleAxis:
			if !knownAxes[req.Name] {
				return fmt.Errorf("unknown axis component %q", req.Name)
			}
		case models.RoleSeries:
			if req.Renderer == "" || req.Series == nil {
				return fmt.Errorf("series component %q has no renderer", req.Name)
			}
		case models.RolePlot:
			plots++
		default:
			return fmt.Errorf("component %q has unknown role %q", req.Name, req.Role)
		}
		byName[req.Name] = i
	}
	if plots != 1 {
		return fmt.Errorf("expected exactly one plot component, got %d", plots)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.components = append([]models.ComponentRequest(nil), requests...)
	c.byName = byName
	return nil
}

// Components returns the mounted components in mount order
func (c *Container) Components() []models.ComponentRequest {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.ComponentRequest(nil), c.components...)
}

// Component returns the named component
func (c *Container) Component(name string) (models.ComponentRequest, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i, ok := c.byName[name]
	if !ok {
		return models.ComponentRequest{}, false
	}
	return c.components[i], true
}

// Series returns the mounted series components in mount order
func (c *Container) Series() []models.ComponentRequest {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []models.ComponentRequest
	for _, comp := range c.components {
		if comp.Role == models.RoleSeries {
			out = append(out, comp)
		}
	}
	return out
}
