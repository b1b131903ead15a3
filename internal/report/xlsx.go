package report

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/jankenoboe/jankenoboe/internal/review"
)

const (
	reviewSheet = "Review"
	levelsSheet = "Levels"
)

func writeXLSX(path string, r *review.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", reviewSheet); err != nil {
		return fmt.Errorf("f.SetSheetName() > %w", err)
	}
	if _, err := f.NewSheet(levelsSheet); err != nil {
		return fmt.Errorf("f.NewSheet(%s) > %w", levelsSheet, err)
	}

	rows := [][]interface{}{
		{"#", "Learning ID", "Song", "Artist", "Level", "Wait Days", "Shows", "Media URLs"},
	}
	for i, entry := range r.Entries {
		rows = append(rows, []interface{}{
			i + 1,
			entry.LearningID,
			entry.SongName,
			entry.ArtistName,
			displayLevel(entry.Level),
			entry.WaitDays,
			strings.Join(entry.ShowNames, " | "),
			strings.Join(entry.MediaURLs, "\n"),
		})
	}
	if err := setRows(f, reviewSheet, rows); err != nil {
		return err
	}

	levelRows := [][]interface{}{{"Level", "Count"}}
	for _, lc := range r.LevelHistogram {
		levelRows = append(levelRows, []interface{}{displayLevel(lc.Level), lc.Count})
	}
	if err := setRows(f, levelsSheet, levelRows); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("f.SaveAs(%s) > %w", path, err)
	}
	return nil
}

func setRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("excelize.CoordinatesToCellName() > %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("f.SetSheetRow(%s, %s) > %w", sheet, cell, err)
		}
	}
	return nil
}
