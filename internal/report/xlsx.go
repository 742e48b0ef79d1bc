package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// Sheet names in the exported workbook.
const (
	SheetSummary      = "Summary"
	SheetCategories   = "By Category"
	SheetDaily        = "By Day"
	SheetTransactions = "Transactions"
)

// numFmtMoney is the built-in "#,##0.00" format.
const numFmtMoney = 4

type xlsxWriter struct {
	f      *excelize.File
	header int
	money  int
}

// WriteXLSX writes the report as a workbook with one sheet per output.
func WriteXLSX(w io.Writer, rep *Report, opts Options) error {
	f := excelize.NewFile()
	defer f.Close()

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DFE6E9"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}
	money, err := f.NewStyle(&excelize.Style{NumFmt: numFmtMoney})
	if err != nil {
		return fmt.Errorf("creating money style: %w", err)
	}
	xw := &xlsxWriter{f: f, header: header, money: money}

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}
	for _, name := range []string{SheetCategories, SheetDaily, SheetTransactions} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("creating sheet %s: %w", name, err)
		}
	}

	if err := xw.summary(rep, opts); err != nil {
		return err
	}
	if err := xw.categories(rep); err != nil {
		return err
	}
	if err := xw.daily(rep, opts); err != nil {
		return err
	}
	if err := xw.transactions(rep, opts); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func (xw *xlsxWriter) summary(rep *Report, opts Options) error {
	var avg any = "n/a"
	if rep.Summary.Average.Valid {
		avg = rep.Summary.Average.Decimal.Round(2).InexactFloat64()
	}
	rows := [][]any{
		{"Metric", "Value"},
		{"From", opts.date(rep.Range.Start)},
		{"To", opts.date(rep.Range.End)},
		{"Total Spending", rep.Summary.Total.InexactFloat64()},
		{"Avg. Transaction", avg},
		{"Transactions", rep.Summary.Count},
		{"Currency", opts.Currency},
	}
	if err := xw.rows(SheetSummary, rows); err != nil {
		return err
	}
	return xw.style(SheetSummary, "B4", "B5", xw.money)
}

func (xw *xlsxWriter) categories(rep *Report) error {
	rows := [][]any{{"Category", "Total", "Share %", "Count"}}
	for _, c := range rep.Categories {
		rows = append(rows, []any{c.Category, c.Total.InexactFloat64(), c.Share.InexactFloat64(), c.Count})
	}
	if err := xw.rows(SheetCategories, rows); err != nil {
		return err
	}
	return xw.moneyColumn(SheetCategories, "B", len(rows))
}

func (xw *xlsxWriter) daily(rep *Report, opts Options) error {
	rows := [][]any{{"Date", "Total", "Count"}}
	for _, d := range rep.Daily {
		rows = append(rows, []any{opts.date(d.Date), d.Total.InexactFloat64(), d.Count})
	}
	if err := xw.rows(SheetDaily, rows); err != nil {
		return err
	}
	return xw.moneyColumn(SheetDaily, "B", len(rows))
}

func (xw *xlsxWriter) transactions(rep *Report, opts Options) error {
	rows := [][]any{{"Date", "Category", "Amount", "Note"}}
	for _, t := range rep.Transactions {
		rows = append(rows, []any{opts.date(t.Date), t.Category, t.Amount.InexactFloat64(), t.Note})
	}
	if err := xw.rows(SheetTransactions, rows); err != nil {
		return err
	}
	return xw.moneyColumn(SheetTransactions, "C", len(rows))
}

// rows writes rows starting at A1 and styles the first one as a header.
func (xw *xlsxWriter) rows(sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := xw.f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing %s row %d: %w", sheet, i+1, err)
		}
	}
	last, err := excelize.CoordinatesToCellName(len(rows[0]), 1)
	if err != nil {
		return err
	}
	return xw.style(sheet, "A1", last, xw.header)
}

func (xw *xlsxWriter) moneyColumn(sheet, col string, n int) error {
	if n < 2 {
		return nil
	}
	return xw.style(sheet, fmt.Sprintf("%s2", col), fmt.Sprintf("%s%d", col, n), xw.money)
}

func (xw *xlsxWriter) style(sheet, from, to string, id int) error {
	if err := xw.f.SetCellStyle(sheet, from, to, id); err != nil {
		return fmt.Errorf("styling %s %s:%s: %w", sheet, from, to, err)
	}
	return nil
}
