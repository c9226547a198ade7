package charts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/plutus/internal/domain"
)

func TestRenderProjection(t *testing.T) {
	states := make([]domain.PortfolioState, 0, 13)
	for m := 0; m <= 12; m++ {
		value := 10000 + float64(m)*520
		states = append(states, domain.PortfolioState{
			Month:       m,
			RiskFree:    value,
			Total:       value,
			Contributed: 10000 + float64(m)*500,
		})
	}

	png, err := RenderProjection("test projection", states)
	require.NoError(t, err)
	require.NotEmpty(t, png)

	// PNG magic bytes.
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestRenderProjectionTooFewPoints(t *testing.T) {
	_, err := RenderProjection("test", []domain.PortfolioState{{Month: 0, Total: 100}})
	assert.Error(t, err)
}
