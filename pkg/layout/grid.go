package layout

import (
	"fmt"

	"github.com/pluqqy/pluqqy-designer/pkg/models"
)

// DefaultGridSize is the canvas grid spacing in pixels
const DefaultGridSize = 10

// Snap quantizes p to the nearest multiple of gridSize on both axes.
// Ties round half to even, so 15 snaps to 20 and 25 snaps to 20 on a
// 10px grid. A non-positive gridSize is a configuration error.
func Snap(p models.Point, gridSize int) (models.Point, error) {
	if gridSize <= 0 {
		return models.Point{}, invalidGridSize(gridSize)
	}
	return models.Point{
		X: roundToGrid(p.X, gridSize),
		Y: roundToGrid(p.Y, gridSize),
	}, nil
}

// Grid is a validated grid size. Its Snap cannot fail.
type Grid struct {
	size int
}

// NewGrid validates size once up front
func NewGrid(size int) (Grid, error) {
	if size <= 0 {
		return Grid{}, invalidGridSize(size)
	}
	return Grid{size: size}, nil
}

// Size returns the grid spacing
func (g Grid) Size() int {
	return g.size
}

// Snap quantizes p to the grid
func (g Grid) Snap(p models.Point) models.Point {
	return models.Point{
		X: roundToGrid(p.X, g.size),
		Y: roundToGrid(p.Y, g.size),
	}
}

func invalidGridSize(size int) error {
	return wrapValidationError(
		fmt.Errorf("%w: grid size must be positive, got %d", ErrInvalidConfiguration, size),
		"invalid grid configuration",
		invalidConfigurationCode,
	)
}

// roundToGrid works in integers so large coordinates never lose precision.
func roundToGrid(v, g int) int {
	q := v / g
	r := v % g
	if r < 0 {
		q--
		r += g
	}
	switch {
	case 2*r > g:
		q++
	case 2*r == g && q%2 != 0:
		q++
	}
	return q * g
}
