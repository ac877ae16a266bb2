package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/harmonic-analysis/pkg/common"
)

func TestAreaCirc(t *testing.T) {
	area, err := AreaCirc(2)
	require.NoError(t, err)
	assert.Equal(t, 12.566370614359172, area)

	area, err = AreaCirc(0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, area)

	area, err = AreaCirc(2.3)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi*2.3*2.3, area, 1e-12)
}

func TestAreaCircDomainError(t *testing.T) {
	for _, r := range []float64{-1, math.NaN()} {
		_, err := AreaCirc(r)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrNegativeRadius))
		assert.True(t, common.HasCode(err, common.ErrCodeDomain))
	}
}
