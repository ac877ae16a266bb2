package geometry

import (
	"errors"
	"math"

	"github.com/RyanBlaney/harmonic-analysis/pkg/common"
)

// ErrNegativeRadius is returned for radii outside the domain of AreaCirc
var ErrNegativeRadius = errors.New("radius must be non-negative")

// AreaCirc returns the area of a circle, pi*r^2
func AreaCirc(radius float64) (float64, error) {
	if radius < 0 || math.IsNaN(radius) {
		return 0, common.NewAnalysisError(common.StageGeometry, "", common.ErrCodeDomain,
			"invalid radius", ErrNegativeRadius)
	}
	return math.Pi * radius * radius, nil
}
