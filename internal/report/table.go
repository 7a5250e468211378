package report

import (
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Table renders the summary as a two-column box table.
func Table(s *Summary) string {
	t := table.NewWriter()
	t.SetTitle(fmt.Sprintf("%s SIGNAL", s.Symbol))
	t.SetStyle(table.StyleRounded)

	t.AppendRows([]table.Row{
		{"Date", s.Date.Format(time.DateOnly)},
		{"Close", fmt.Sprintf("%.2f", s.Close)},
		{fmt.Sprintf("SMA(%d)", s.Params.Short), fmt.Sprintf("%.2f", s.SMAShort)},
		{fmt.Sprintf("SMA(%d)", s.Params.Long), fmt.Sprintf("%.2f", s.SMALong)},
		{fmt.Sprintf("RSI(%d)", s.Params.RSIPeriod), fmt.Sprintf("%.2f", s.RSI)},
		{"Signal", s.Signal.String()},
	})

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMin: 10, Align: text.AlignLeft},
		{Number: 2, WidthMin: 12, Align: text.AlignRight},
	})
	return t.Render()
}
