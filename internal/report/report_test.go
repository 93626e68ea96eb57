package report

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/keikurono7/major-project/internal/store"
)

func sampleRows() []store.ProgressRow {
	return []store.ProgressRow{
		{TopicID: 1, TopicName: "Well-Posed Learning Problems", ModuleName: "MODULE-1", Score: 0.7, Attempts: 2, TotalQuestions: 6, CorrectAnswers: 5},
		{TopicID: 2, TopicName: "Find-S Algorithm", ModuleName: "MODULE-1", Score: 0.3, Attempts: 1, TotalQuestions: 3, CorrectAnswers: 1},
		{TopicID: 3, TopicName: "Sequential Covering Algorithms", ModuleName: "MODULE-2", Score: 0.5},
	}
}

func TestSummarize(t *testing.T) {
	summary, ok := Summarize(sampleRows())
	if !ok {
		t.Fatal("expected a summary")
	}
	if summary.WeakestTopic != "Find-S Algorithm" || summary.WeakestScore != 0.3 {
		t.Errorf("weakest = %q (%v)", summary.WeakestTopic, summary.WeakestScore)
	}
	if summary.StrongestTopic != "Well-Posed Learning Problems" || summary.StrongestScore != 0.7 {
		t.Errorf("strongest = %q (%v)", summary.StrongestTopic, summary.StrongestScore)
	}
	if math.Abs(summary.AverageScore-0.5) > 1e-9 {
		t.Errorf("average = %v, want 0.5", summary.AverageScore)
	}
	if summary.TotalTopics != 3 || summary.Attempted != 2 {
		t.Errorf("totals = %d/%d", summary.Attempted, summary.TotalTopics)
	}
}

func TestSummarize_Empty(t *testing.T) {
	if _, ok := Summarize(nil); ok {
		t.Error("empty rows should not summarize")
	}
}

func TestByModule(t *testing.T) {
	groups := ByModule(sampleRows())
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if len(groups["MODULE-1"]) != 2 || len(groups["MODULE-2"]) != 1 {
		t.Errorf("group sizes = %d, %d", len(groups["MODULE-1"]), len(groups["MODULE-2"]))
	}
}

func TestAccuracy(t *testing.T) {
	rows := sampleRows()
	if got := Accuracy(rows[0]); math.Abs(got-5.0/6.0) > 1e-9 {
		t.Errorf("accuracy = %v", got)
	}
	if got := Accuracy(rows[2]); got != 0 {
		t.Errorf("unattempted accuracy = %v, want 0", got)
	}
}

func TestWriteProgress(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.xlsx")
	if err := WriteProgress(path, "Machine Learning", sampleRows()); err != nil {
		t.Fatalf("write: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer f.Close()

	got, err := f.GetCellValue("Progress", "B3")
	if err != nil {
		t.Fatalf("get cell: %v", err)
	}
	if got != "Find-S Algorithm" {
		t.Errorf("B3 = %q, want second topic name", got)
	}

	header, err := f.GetCellValue("Progress", "C1")
	if err != nil {
		t.Fatalf("get header: %v", err)
	}
	if header != "Confidence" {
		t.Errorf("C1 = %q", header)
	}
}

func TestWriteInsights(t *testing.T) {
	path := filepath.Join(t.TempDir(), "insights.xlsx")
	rows := []store.InsightRow{
		{SubjectName: "Machine Learning", ModuleName: "MODULE-1", TopicName: "Find-S Algorithm", AvgConfidence: 0.25, StudentCount: 4},
	}
	if err := WriteInsights(path, rows); err != nil {
		t.Fatalf("write: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer f.Close()

	got, err := f.GetCellValue("Insights", "C2")
	if err != nil {
		t.Fatalf("get cell: %v", err)
	}
	if got != "Find-S Algorithm" {
		t.Errorf("C2 = %q", got)
	}
}
