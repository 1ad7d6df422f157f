package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"ocbs-be/internal/entity"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	return table
}

func renderStatus(w io.Writer, infos []*entity.PoolCacheInfo, now time.Time) {
	table := newTable(w, []string{"ID", "Stage", "Backend", "State", "Size", "Saved"})
	for _, info := range infos {
		state := color.RedString("miss")
		size, saved := "-", "-"
		if info.Cached {
			state = color.GreenString("cached")
			size = humanize.Bytes(uint64(info.Size))
			if !info.SavedAt.IsZero() {
				saved = humanize.RelTime(info.SavedAt, now, "ago", "from now")
			}
		}
		table.Append([]string{
			strconv.Itoa(int(info.Stage)),
			info.Stage.Slug(),
			info.Backend,
			state,
			size,
			saved,
		})
	}
	table.Render()
}

func formatFigure(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func renderPool(w io.Writer, pool *entity.Pool) {
	table := newTable(w, []string{"Pick", "Map", "Title", "Length", "SR", "AR", "OD", "CS", "HP", "BPM"})
	for _, c := range entity.AllCategories() {
		for _, p := range pool.Picks(c) {
			table.Append([]string{
				p.Pick.Label(),
				strconv.FormatInt(p.MapId, 10),
				fmt.Sprintf("%s - %s [%s]", p.Artist, p.Title, p.Difficulty),
				p.Length,
				formatFigure(p.Attributes.StarRating),
				formatFigure(p.Attributes.AR),
				formatFigure(p.Attributes.OD),
				formatFigure(p.Attributes.CS),
				formatFigure(p.Attributes.HP),
				formatFigure(p.Attributes.BPM),
			})
		}
	}
	table.SetFooter([]string{"", "", "", "", "", "", "", "", "Picks", strconv.Itoa(pool.Count())})
	table.Render()
}
