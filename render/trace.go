package render

import (
	"fmt"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/swarm"
)

// Series is a trace split into plottable columns. Xs and Ys hold every
// sample; ChangeXs and ChangeYs hold only the samples at which the closest
// particle changed.
type Series struct {
	Xs, Ys             []float64
	ChangeXs, ChangeYs []float64
}

// TraceSeries converts tr into float columns of step count and distance.
func TraceSeries(tr *swarm.Trace) *Series {
	s := &Series{
		Xs: make([]float64, tr.Len()),
		Ys: make([]float64, tr.Len()),
	}

	for i := range tr.Steps {
		s.Xs[i] = float64(tr.Steps[i])
		s.Ys[i] = float64(tr.Distances[i])
		if tr.Changed[i] {
			s.ChangeXs = append(s.ChangeXs, s.Xs[i])
			s.ChangeYs = append(s.ChangeYs, s.Ys[i])
		}
	}

	return s
}

// PlotTrace plots the distance of the closest particle against step count
// and saves the figure to fname. Changes of the closest particle are marked.
func PlotTrace(fname string, tr *swarm.Trace) {
	s := TraceSeries(tr)
	if len(s.Xs) == 0 {
		return
	}

	plt.Reset()
	plt.Figure()
	plt.Plot(s.Xs, s.Ys, "k", plt.LW(2))
	if len(s.ChangeXs) > 0 {
		plt.Plot(s.ChangeXs, s.ChangeYs, "or")
	}

	plt.Title(fmt.Sprintf(
		"Closest particle: %d", tr.Indices[len(tr.Indices)-1],
	))
	plt.XLabel("Step", plt.FontSize(16))
	plt.YLabel("Manhattan distance", plt.FontSize(16))
	plt.XLim(0, s.Xs[len(s.Xs)-1])

	plt.Grid(plt.Axis("y"))
	plt.SaveFig(fname)
	plt.Execute()
}
