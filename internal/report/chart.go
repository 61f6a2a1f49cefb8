package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/banshee-data/bustrace/internal/tracestore"
)

// WriteSessionCharts renders the traffic overview of one imported session as
// a standalone HTML page: message counts per channel and the busiest frame
// identifiers.
func WriteSessionCharts(w io.Writer, sess *tracestore.Session, channels []tracestore.ChannelStats, topIDs []tracestore.IDCount) error {
	page := components.NewPage()
	page.PageTitle = "Bus Trace Report"
	page.AddCharts(channelBar(sess, channels), topIDBar(topIDs))

	if err := page.Render(w); err != nil {
		return fmt.Errorf("render session charts: %w", err)
	}
	return nil
}

func channelBar(sess *tracestore.Session, channels []tracestore.ChannelStats) *charts.Bar {
	x := make([]string, 0, len(channels))
	y := make([]opts.BarData, 0, len(channels))
	for _, cs := range channels {
		x = append(x, fmt.Sprintf("%s %d", cs.Bus, cs.Channel))
		y = append(y, opts.BarData{Value: cs.MessageCount})
	}

	subtitle := fmt.Sprintf("session=%s source=%s objects=%d", sess.ID, sess.SourcePath, sess.ObjectCount)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "480px"}),
		charts.WithTitleOpts(opts.Title{Title: "Messages per Channel", Subtitle: subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(x).
		AddSeries("messages", y,
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}),
		)
	return bar
}

func topIDBar(topIDs []tracestore.IDCount) *charts.Bar {
	x := make([]string, 0, len(topIDs))
	y := make([]opts.BarData, 0, len(topIDs))
	for _, ic := range topIDs {
		x = append(x, fmt.Sprintf("0x%X", ic.FrameID))
		y = append(y, opts.BarData{Value: ic.Count})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "480px"}),
		charts.WithTitleOpts(opts.Title{Title: "Busiest Frame IDs"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(x).
		AddSeries("messages", y,
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}),
		)
	return bar
}
