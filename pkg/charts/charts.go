// Package charts renders the transformer's point arrays as PNG images
// for the console's chart endpoints.
package charts

import (
	"bytes"
	"errors"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/smartfarm-io/console/pkg/models"
)

var ErrNoData = errors.New("no chart data available")

// Generator handles chart image creation.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// HealthTrend renders the health forecast as a line chart.
func (g *Generator) HealthTrend(points []models.HealthPoint) ([]byte, error) {
	series := chart.TimeSeries{
		Name: "Health",
		Style: chart.Style{
			StrokeColor: drawing.ColorFromHex("2ecc71"),
			StrokeWidth: 2,
		},
	}

	for _, p := range points {
		t, err := time.Parse("2006-01", p.Date)
		if err != nil {
			continue
		}

		series.XValues = append(series.XValues, t)
		series.YValues = append(series.YValues, p.Health)
	}

	if len(series.XValues) == 0 {
		return nil, ErrNoData
	}

	graph := chart.Chart{
		Width:  800,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 20, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name: "Month",
		},
		YAxis: chart.YAxis{
			Name: "Avg Health %",
		},
		Series: []chart.Series{series},
	}

	buffer := bytes.NewBuffer([]byte{})
	err := graph.Render(chart.PNG, buffer)

	return buffer.Bytes(), err
}

// YieldProjection renders the yield forecast as a bar chart.
func (g *Generator) YieldProjection(points []models.YieldPoint) ([]byte, error) {
	if len(points) == 0 {
		return nil, ErrNoData
	}

	values := make([]chart.Value, 0, len(points))

	for _, p := range points {
		values = append(values, chart.Value{
			Label: p.Month,
			Value: p.Yield,
			Style: chart.Style{
				FillColor: drawing.ColorFromHex("3498db"),
			},
		})
	}

	graph := chart.BarChart{
		Width:  800,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 20, Left: 20, Right: 20, Bottom: 20},
		},
		YAxis: chart.YAxis{
			Name: "Tons",
		},
		Bars: values,
	}

	buffer := bytes.NewBuffer([]byte{})
	err := graph.Render(chart.PNG, buffer)

	return buffer.Bytes(), err
}
