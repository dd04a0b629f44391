package charts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartfarm-io/console/pkg/models"
)

func TestHealthTrendRendersPNG(t *testing.T) {
	g := NewGenerator()

	data, err := g.HealthTrend([]models.HealthPoint{
		{Date: "2024-01", Health: 90},
		{Date: "2024-02", Health: 88},
	})
	require.NoError(t, err)
	require.NotEmpty(t, data)

	// PNG signature.
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data[:4])
}

func TestHealthTrendSkipsUnparsableLabels(t *testing.T) {
	g := NewGenerator()

	_, err := g.HealthTrend([]models.HealthPoint{{Date: "garbage", Health: 1}})
	assert.ErrorIs(t, err, ErrNoData)
}

func TestYieldProjectionRendersPNG(t *testing.T) {
	g := NewGenerator()

	data, err := g.YieldProjection([]models.YieldPoint{
		{Month: "01", Yield: 30},
		{Month: "02", Yield: 31},
	})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data[:4])

	_, err = g.YieldProjection(nil)
	assert.ErrorIs(t, err, ErrNoData)
}
