// Package vis renders a ranked signed graph as an interactive force layout.
package vis

import (
	"bytes"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/relevant-community/signedrank/srwr"
)

// node categories, in legend order
const (
	Seed = iota
	Negative
	Positive
)

// Data is the nodes and links of one chart
type Data struct {
	Nodes []opts.GraphNode
	Links []opts.GraphLink
}

// GetData turns a graph and its ranking into chart data.
// node size follows the absolute net score, distrust links keep their sign
func GetData(graph *srwr.WeightedGraph, seed int, results []srwr.Result) Data {
	var nodes []opts.GraphNode
	for _, res := range results {
		rank := res.Score

		symbol := "circle"
		category := Positive
		switch {
		case res.Node == seed:
			symbol = "triangle"
			category = Seed
		case rank < 0:
			category = Negative
		}

		nodes = append(nodes, opts.GraphNode{
			Name:       graph.ID(res.Node),
			Value:      float32(rank),
			Symbol:     symbol,
			SymbolSize: 10 + math.Abs(rank)*350,
			Category:   category,
		})
	}

	var links []opts.GraphLink
	graph.Edges(func(a, b int, weight float64) {
		links = append(links, opts.GraphLink{
			Source: graph.ID(a),
			Target: graph.ID(b),
			Value:  float32(weight),
		})
	})

	return Data{
		Nodes: nodes,
		Links: links,
	}
}

// scoreRange is the largest absolute net score, so the color scale is centred on 0
func scoreRange(nodes []opts.GraphNode) float32 {
	var largest float32
	for _, n := range nodes {
		v := n.Value
		if v < 0 {
			v = -v
		}
		if v > largest {
			largest = v
		}
	}
	if largest == 0 {
		return 1
	}
	return largest
}

// Chart builds the force layout chart for data.
// nodes are colored from distrusted (red) to trusted (blue) by net score
func Chart(data Data, title string) *charts.Graph {
	limit := scoreRange(data.Nodes)

	graph := charts.NewGraph()
	graph.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: "net score = trust - distrust",
		}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Formatter: "{b}: {c}"}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: true,
			Min:        -limit,
			Max:        limit,
			Text:       []string{"trusted", "distrusted"},
			InRange: &opts.VisualMapInRange{
				Color: []string{"#d94e5d", "#eeeeee", "#50a3ba"},
			},
		}),
	)

	graph.AddSeries("net score", data.Nodes, data.Links).
		SetSeriesOptions(
			charts.WithGraphChartOpts(opts.GraphChart{
				Categories: []*opts.GraphCategory{
					{Name: "seed"},
					{Name: "distrusted"},
					{Name: "trusted"},
				},
				Force:              &opts.GraphForce{Repulsion: float32(200 + 40*len(data.Nodes)), EdgeLength: 80},
				Layout:             "force",
				Roam:               true,
				FocusNodeAdjacency: true,
			}),
			charts.WithLabelOpts(opts.Label{Show: true, Position: "right", Color: "black"}),
			charts.WithLineStyleOpts(opts.LineStyle{Curveness: 0.2}),
		)
	return graph
}

// Render writes a page holding the ranked graph to w
func Render(w io.Writer, graph *srwr.WeightedGraph, seed int, results []srwr.Result, title string) error {
	page := components.NewPage()
	page.AddCharts(
		Chart(GetData(graph, seed, results), title),
	)

	// a failed render writes nothing
	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}
