package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/keikurono7/major-project/internal/report"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Show class-wide weak topics for a teacher",
	Long: "Insights aggregates confidence across all enrolled students and lists the\n" +
		"topics the class struggles with most, so lectures can revisit them.",
	RunE: func(cmd *cobra.Command, args []string) error {
		teacherID, _ := cmd.Flags().GetInt64("teacher")
		limit, _ := cmd.Flags().GetInt("limit")
		minStudents, _ := cmd.Flags().GetInt("min-students")
		xlsxPath, _ := cmd.Flags().GetString("xlsx")
		if teacherID <= 0 {
			return fmt.Errorf("--teacher is required")
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		rows, err := st.ProgressRepo().WeakestTopicsForTeacher(cmd.Context(), teacherID, limit, minStudents)
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			fmt.Println("No topics meet the reporting threshold yet.")
			return nil
		}

		fmt.Printf("%-24s  %-12s  %-40s  %-10s  %s\n",
			"Subject", "Module", "Topic", "Avg conf", "Students")
		fmt.Println(strings.Repeat("─", 100))
		for _, r := range rows {
			fmt.Printf("%-24s  %-12s  %-40s  %-10.3f  %d\n",
				r.SubjectName, r.ModuleName, r.TopicName, r.AvgConfidence, r.StudentCount)
		}

		if xlsxPath != "" {
			if err := report.WriteInsights(xlsxPath, rows); err != nil {
				return fmt.Errorf("write workbook: %w", err)
			}
			fmt.Printf("Wrote %s\n", xlsxPath)
		}
		return nil
	},
}

func init() {
	insightsCmd.Flags().Int64("teacher", 0, "Teacher ID whose subjects to aggregate")
	insightsCmd.Flags().Int("limit", 10, "Maximum topics to list")
	insightsCmd.Flags().Int("min-students", 3, "Minimum students with progress on a topic")
	insightsCmd.Flags().String("xlsx", "", "Also export the report to an Excel workbook at this path")
}
