package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/keikurono7/major-project/internal/syllabus"
)

var seedCmd = &cobra.Command{
	Use:   "seed <syllabus.yaml>",
	Short: "Load a syllabus file into the database",
	Long: "Seed creates the subject, modules, topics, and reference books declared in\n" +
		"a syllabus YAML file. With --student, the student is enrolled with default\n" +
		"confidence on every topic.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		teacherID, _ := cmd.Flags().GetInt64("teacher")
		students, _ := cmd.Flags().GetInt64Slice("student")

		f, err := syllabus.Load(args[0])
		if err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		res, err := syllabus.Seed(ctx, st.ContentRepo(), f, teacherID)
		if err != nil {
			return err
		}
		fmt.Printf("Seeded %q: %d modules, %d topics\n", f.Subject, len(f.Modules), len(res.TopicIDs))

		for _, studentID := range students {
			if err := syllabus.Enroll(ctx, st.ProgressRepo(), studentID, res.TopicIDs); err != nil {
				return fmt.Errorf("enroll student %d: %w", studentID, err)
			}
			fmt.Printf("Enrolled student %d on %d topics\n", studentID, len(res.TopicIDs))
		}
		return nil
	},
}

func init() {
	seedCmd.Flags().Int64("teacher", 1, "Teacher ID that owns the subject")
	seedCmd.Flags().Int64Slice("student", nil, "Student ID to enroll (repeatable)")
}
