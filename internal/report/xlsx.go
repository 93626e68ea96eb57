package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/keikurono7/major-project/internal/store"
)

// WriteProgress writes a student's per-topic progress to an .xlsx workbook.
func WriteProgress(path, subjectName string, rows []store.ProgressRow) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Progress"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	headers := []string{"Module", "Topic", "Confidence", "Attempts", "Questions", "Correct", "Accuracy"}
	if err := writeRow(f, sheet, 1, headers); err != nil {
		return err
	}

	for i, r := range rows {
		cells := []any{
			r.ModuleName,
			r.TopicName,
			r.Score,
			r.Attempts,
			r.TotalQuestions,
			r.CorrectAnswers,
			Accuracy(r),
		}
		if err := writeRow(f, sheet, i+2, cells); err != nil {
			return err
		}
	}

	if summary, ok := Summarize(rows); ok {
		base := len(rows) + 3
		summaryRows := [][]any{
			{"Subject", subjectName},
			{"Average confidence", summary.AverageScore},
			{"Weakest topic", summary.WeakestTopic, summary.WeakestScore},
			{"Strongest topic", summary.StrongestTopic, summary.StrongestScore},
			{"Topics attempted", fmt.Sprintf("%d/%d", summary.Attempted, summary.TotalTopics)},
		}
		for i, cells := range summaryRows {
			if err := writeRow(f, sheet, base+i, cells); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// WriteInsights writes class-level weak-topic aggregates to an .xlsx
// workbook for teacher review.
func WriteInsights(path string, rows []store.InsightRow) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Insights"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	headers := []string{"Subject", "Module", "Topic", "Avg Confidence", "Students"}
	if err := writeRow(f, sheet, 1, headers); err != nil {
		return err
	}
	for i, r := range rows {
		cells := []any{r.SubjectName, r.ModuleName, r.TopicName, r.AvgConfidence, r.StudentCount}
		if err := writeRow(f, sheet, i+2, cells); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func writeRow[T any](f *excelize.File, sheet string, row int, cells []T) error {
	for col, v := range cells {
		name, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("cell coordinates: %w", err)
		}
		if err := f.SetCellValue(sheet, name, v); err != nil {
			return fmt.Errorf("set cell %s: %w", name, err)
		}
	}
	return nil
}
