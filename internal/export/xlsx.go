package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/osse101/aion2-tracker/internal/domain"
)

// workbook wraps an excelize file with a shared header style
type workbook struct {
	f           *excelize.File
	headerStyle int
	sheets      int
}

func newWorkbook() (*workbook, error) {
	f := excelize.NewFile()
	style, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf(ErrMsgStyle, "header", err)
	}
	return &workbook{f: f, headerStyle: style}, nil
}

// sheet creates a named sheet; the first call renames the default one.
func (w *workbook) sheet(name string, header []string) error {
	if w.sheets == 0 {
		if err := w.f.SetSheetName(defaultSheet, name); err != nil {
			return err
		}
	} else if _, err := w.f.NewSheet(name); err != nil {
		return err
	}
	w.sheets++

	if err := w.row(name, 1, toAny(header)...); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	if err := w.f.SetCellStyle(name, "A1", last, w.headerStyle); err != nil {
		return fmt.Errorf(ErrMsgStyle, name, err)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(header))
	if err := w.f.SetColWidth(name, "A", lastCol, 14); err != nil {
		return fmt.Errorf(ErrMsgStyle, name, err)
	}
	return w.f.SetPanes(name, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})
}

func (w *workbook) row(sheet string, row int, values ...any) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := w.f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf(ErrMsgWriteCell, sheet, cell, err)
		}
	}
	return nil
}

func (w *workbook) writeTo(out io.Writer) error {
	defer w.f.Close()
	w.f.SetActiveSheet(0)
	if _, err := w.f.WriteTo(out); err != nil {
		return fmt.Errorf(ErrMsgWriteWorkbook, err)
	}
	return nil
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

func (w *workbook) leaderboard(entries []domain.LeaderboardEntry) error {
	if err := w.sheet(SheetLeaderboard, leaderboardHeader); err != nil {
		return err
	}
	for i, e := range entries {
		if err := w.row(SheetLeaderboard, i+2, e.Rank, e.Name, e.Server, e.Class, e.Score, string(e.Grade), e.Percentile); err != nil {
			return err
		}
	}
	return nil
}

func (w *workbook) tiers(tiers []domain.ClassTier) error {
	if err := w.sheet(SheetTiers, tierHeader); err != nil {
		return err
	}
	for i, t := range tiers {
		if err := w.row(SheetTiers, i+2, t.Class, t.Count, t.AverageScore, t.MedianScore, string(t.Tier)); err != nil {
			return err
		}
	}
	return nil
}

// Rankings writes a workbook with a leaderboard sheet and a tier list sheet.
func Rankings(out io.Writer, entries []domain.LeaderboardEntry, tiers []domain.ClassTier) error {
	w, err := newWorkbook()
	if err != nil {
		return err
	}
	if err := w.leaderboard(entries); err != nil {
		_ = w.f.Close()
		return err
	}
	if err := w.tiers(tiers); err != nil {
		_ = w.f.Close()
		return err
	}
	return w.writeTo(out)
}

// Ledger writes the entries of a period and its summary.
func Ledger(out io.Writer, entries []domain.LedgerEntry, sum domain.LedgerSummary) error {
	w, err := newWorkbook()
	if err != nil {
		return err
	}
	if err := w.ledgerEntries(entries); err != nil {
		_ = w.f.Close()
		return err
	}
	if err := w.ledgerSummary(sum); err != nil {
		_ = w.f.Close()
		return err
	}
	return w.writeTo(out)
}

func (w *workbook) ledgerEntries(entries []domain.LedgerEntry) error {
	if err := w.sheet(SheetEntries, entryHeader); err != nil {
		return err
	}
	for i, e := range entries {
		if err := w.row(SheetEntries, i+2, e.OccurredAt.UTC().Format(timestampLayout), string(e.Category), e.Amount, e.Note); err != nil {
			return err
		}
	}
	return w.f.SetColWidth(SheetEntries, "D", "D", 40)
}

func (w *workbook) ledgerSummary(sum domain.LedgerSummary) error {
	if err := w.sheet(SheetSummary, []string{"Metric", "Value"}); err != nil {
		return err
	}
	rows := [][]any{
		{"Character", sum.CharacterID},
		{"From", sum.From.UTC().Format(timestampLayout)},
		{"To", sum.To.UTC().Format(timestampLayout)},
		{"Total", sum.Total},
		{"Income", sum.Income},
		{"Expense", sum.Expense},
		{"Average per active day", sum.AveragePerActive},
	}
	if sum.BestDay != nil {
		rows = append(rows, []any{"Best day", fmt.Sprintf("%s (%d)", sum.BestDay.Date, sum.BestDay.Total)})
	}
	for _, c := range domain.LedgerCategories {
		if v, ok := sum.ByCategory[c]; ok {
			rows = append(rows, []any{"Category: " + string(c), v})
		}
	}
	for _, d := range sum.Daily {
		rows = append(rows, []any{"Day: " + d.Date, d.Total})
	}
	for i, r := range rows {
		if err := w.row(SheetSummary, i+2, r...); err != nil {
			return err
		}
	}
	return w.f.SetColWidth(SheetSummary, "A", "A", 24)
}
