package charts

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vicanso/go-charts/v2"

	"github.com/aristath/plutus/internal/domain"
	"github.com/aristath/plutus/internal/modules/simulation"
)

func chartTitle(req simulation.Request) string {
	return fmt.Sprintf("Projection • %d months • %s • target vol %.0f%%",
		req.DurationMonths, strings.ToUpper(string(req.Scenario)), req.TargetVolatility*100)
}

// RenderProjection renders a simulated portfolio path as a PNG line chart:
// total value against cumulative contributions, one point per month.
func RenderProjection(title string, states []domain.PortfolioState) ([]byte, error) {
	if len(states) < 2 {
		return nil, errors.New("not enough data points to chart")
	}

	totals := make([]float64, len(states))
	contributed := make([]float64, len(states))
	xLabels := make([]string, len(states))
	yMin, yMax := states[0].Total, states[0].Total

	for i, st := range states {
		totals[i] = st.Total
		contributed[i] = st.Contributed
		xLabels[i] = fmt.Sprintf("M%d", st.Month)

		for _, v := range []float64{st.Total, st.Contributed} {
			if v < yMin {
				yMin = v
			}
			if v > yMax {
				yMax = v
			}
		}
	}

	// Pad the value axis so the series don't hug the frame.
	pad := (yMax - yMin) * 0.05
	if pad == 0 {
		pad = 1
	}
	yMin -= pad
	yMax += pad

	split := 12
	if len(states) <= 24 {
		split = len(states) - 1
	}

	painter, err := charts.LineRender(
		[][]float64{totals, contributed},
		charts.TitleTextOptionFunc(title),
		charts.XAxisOptionFunc(charts.XAxisOption{Data: xLabels, BoundaryGap: charts.FalseFlag(), SplitNumber: split}),
		charts.YAxisOptionFunc(charts.YAxisOption{Min: &yMin, Max: &yMax, DivideCount: 5}),
		charts.LegendOptionFunc(charts.LegendOption{Data: []string{"portfolio value", "contributed"}}),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to render projection chart: %w", err)
	}

	return painter.Bytes()
}
