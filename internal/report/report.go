// Package report renders the end-of-run summary table.
package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"translatesrt/internal/language"
)

// Summary collects the figures shown after a run.
type Summary struct {
	Input              string
	Output             string
	Backend            string
	Source             string
	Target             string
	Policy             string
	Cues               int
	Groups             int
	ExpectedLines      int
	TranslatedLines    int
	MismatchedGroups   int
	ShortCues          int
	FailedTranslations int
	CacheHits          int
	CacheMisses        int
	CacheEnabled       bool
	Elapsed            time.Duration
}

// Rows returns the summary as field/value pairs in display order.
func (s Summary) Rows() [][]string {
	rows := [][]string{
		{"Input", s.Input},
		{"Output", s.Output},
		{"Backend", s.Backend},
		{"Languages", languages(s.Source, s.Target)},
		{"Policy", s.Policy},
		{"Cues", strconv.Itoa(s.Cues)},
		{"Sentence groups", strconv.Itoa(s.Groups)},
		{"Lines (source/translated)", fmt.Sprintf("%d/%d", s.ExpectedLines, s.TranslatedLines)},
		{"Mismatched groups", strconv.Itoa(s.MismatchedGroups)},
		{"Short cues", strconv.Itoa(s.ShortCues)},
		{"Failed translations", strconv.Itoa(s.FailedTranslations)},
	}
	if s.CacheEnabled {
		rows = append(rows, []string{"Cache (hits/misses)", fmt.Sprintf("%d/%d", s.CacheHits, s.CacheMisses)})
	}
	rows = append(rows, []string{"Elapsed", s.Elapsed.Round(time.Millisecond).String()})
	return rows
}

// Write renders the summary to w.
func Write(w io.Writer, s Summary) error {
	_, err := fmt.Fprintln(w, renderTable([]string{"Field", "Value"}, s.Rows(), []columnAlignment{alignLeft, alignLeft}))
	return err
}

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

func languages(source, target string) string {
	codes := source + " -> " + target
	names := language.DisplayName(source) + " -> " + language.DisplayName(target)
	if names == codes {
		return codes
	}
	return names + " (" + codes + ")"
}
