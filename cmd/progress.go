package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/keikurono7/major-project/internal/confidence"
	"github.com/keikurono7/major-project/internal/report"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show a student's per-topic confidence",
	RunE: func(cmd *cobra.Command, args []string) error {
		studentID, _ := cmd.Flags().GetInt64("student")
		subjectName, _ := cmd.Flags().GetString("subject")
		xlsxPath, _ := cmd.Flags().GetString("xlsx")
		if studentID <= 0 {
			return fmt.Errorf("--student is required")
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		subject, err := resolveSubject(ctx, st.ContentRepo(), subjectName)
		if err != nil {
			return err
		}

		rows, err := st.ProgressRepo().ProgressOverview(ctx, studentID, subject.ID)
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			fmt.Println("No progress recorded. Enroll with eduquiz seed --student.")
			return nil
		}

		fmt.Printf("%-12s  %-40s  %-10s  %-8s  %-8s  %s\n",
			"Module", "Topic", "Confidence", "Attempts", "Correct", "Level")
		fmt.Println(strings.Repeat("─", 100))
		for _, r := range rows {
			module := r.ModuleName
			if len(module) > 12 {
				module = module[:12]
			}
			topic := r.TopicName
			if len(topic) > 40 {
				topic = topic[:40]
			}
			fmt.Printf("%-12s  %-40s  %-10.3f  %-8d  %d/%-6d  %s\n",
				module, topic, r.Score, r.Attempts, r.CorrectAnswers, r.TotalQuestions,
				confidence.DifficultyFor(r.Score))
		}

		if summary, ok := report.Summarize(rows); ok {
			fmt.Println(strings.Repeat("─", 100))
			fmt.Printf("Average confidence: %.3f over %d topics (%d attempted)\n",
				summary.AverageScore, summary.TotalTopics, summary.Attempted)
			fmt.Printf("Weakest: %s (%.3f)   Strongest: %s (%.3f)\n",
				summary.WeakestTopic, summary.WeakestScore,
				summary.StrongestTopic, summary.StrongestScore)
		}

		if xlsxPath != "" {
			if err := report.WriteProgress(xlsxPath, subject.Name, rows); err != nil {
				return fmt.Errorf("write workbook: %w", err)
			}
			fmt.Printf("Wrote %s\n", xlsxPath)
		}
		return nil
	},
}

func init() {
	progressCmd.Flags().Int64("student", 0, "Student ID to report on")
	progressCmd.Flags().String("subject", "", "Subject name (defaults to the only seeded subject)")
	progressCmd.Flags().String("xlsx", "", "Also export the report to an Excel workbook at this path")
}
