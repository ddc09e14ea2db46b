package cost

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEstimateUSD(t *testing.T) {

	// 1000 input + 1000 output tokens at gpt-4o-mini pricing.
	usd := EstimateUSD("gpt-4o-mini", 1000, 1000)
	require.InDelta(t, 0.00075, usd, 1e-9)

	require.Zero(t, EstimateUSD("unknown-model", 1000, 1000))
	require.Zero(t, EstimateUSD("gpt-4o", 0, 0))
}

func TestProjectUSDScalesWithPassesAndLines(t *testing.T) {

	one := ProjectUSD("gpt-4o-mini", 100, 1)
	four := ProjectUSD("gpt-4o-mini", 100, 4)
	require.InDelta(t, 4*one, four, 1e-9)

	small := ProjectUSD("gpt-4o-mini", 10, 4)
	large := ProjectUSD("gpt-4o-mini", 1000, 4)
	require.Greater(t, large, small)

	require.Zero(t, ProjectUSD("unknown-model", 100, 4))
}
