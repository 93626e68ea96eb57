package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/keikurono7/major-project/internal/confidence"
	"github.com/keikurono7/major-project/internal/content"
	"github.com/keikurono7/major-project/internal/llm"
	"github.com/keikurono7/major-project/internal/quizgen"
	"github.com/keikurono7/major-project/internal/session"
	"github.com/keikurono7/major-project/internal/store"
)

var quizCmd = &cobra.Command{
	Use:   "quiz [topic name]",
	Short: "Take a quiz on a topic",
	Long: "Quiz generates multiple-choice questions for a topic and updates the\n" +
		"student's confidence from the result. Without a topic name the weakest\n" +
		"topic in the subject is chosen. Topic names are matched fuzzily.",
	RunE: func(cmd *cobra.Command, args []string) error {
		studentID, _ := cmd.Flags().GetInt64("student")
		subjectName, _ := cmd.Flags().GetString("subject")
		count, _ := cmd.Flags().GetInt("count")
		if studentID <= 0 {
			return fmt.Errorf("--student is required")
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		logger := newLogger(cmd)
		contents := st.ContentRepo()

		subject, err := resolveSubject(ctx, contents, subjectName)
		if err != nil {
			return err
		}
		topic, err := chooseTopic(ctx, st, studentID, subject.ID, strings.Join(args, " "))
		if err != nil {
			return err
		}

		provider, err := llm.NewProvider(ctx, llm.DiscoverConfig(), logger)
		if err != nil {
			return fmt.Errorf("configure LLM provider: %w", err)
		}

		manager := session.NewManager(st.ProgressRepo(), contents, quizgen.NewLLMGenerator(provider),
			st.HistoryRepo(), session.Config{QuestionCount: count, Logger: logger})

		fmt.Printf("Generating quiz on %q...\n\n", topic.Name)
		sess, err := manager.Start(ctx, studentID, topic.ID)
		if err != nil {
			return err
		}

		answers, err := askQuestions(sess.Quiz.Questions)
		if err != nil || answers == nil {
			if abandonErr := manager.Abandon(sess); abandonErr != nil {
				return abandonErr
			}
			fmt.Println("Quiz abandoned. Nothing was recorded.")
			return err
		}

		summary, err := manager.SubmitAll(ctx, sess, answers)
		if err != nil {
			return err
		}
		printSummary(summary)
		return nil
	},
}

func init() {
	quizCmd.Flags().Int64("student", 0, "Student ID taking the quiz")
	quizCmd.Flags().String("subject", "", "Subject name (defaults to the only seeded subject)")
	quizCmd.Flags().Int("count", 0, "Number of questions to generate")
}

func resolveSubject(ctx context.Context, contents content.Repo, name string) (content.Subject, error) {
	if name != "" {
		return contents.SubjectByName(ctx, name)
	}
	subjects, err := contents.Subjects(ctx)
	if err != nil {
		return content.Subject{}, err
	}
	if len(subjects) == 0 {
		return content.Subject{}, fmt.Errorf("no subjects seeded; run eduquiz seed first")
	}
	return subjects[0], nil
}

// chooseTopic resolves an explicit topic query fuzzily, or falls back to the
// student's weakest topic in the subject.
func chooseTopic(ctx context.Context, st *store.Store, studentID, subjectID int64, query string) (content.Topic, error) {
	topics, err := st.ContentRepo().TopicsBySubject(ctx, subjectID)
	if err != nil {
		return content.Topic{}, err
	}

	if query != "" {
		return content.ResolveTopic(topics, query)
	}

	recs, err := st.ProgressRepo().BySubject(ctx, studentID, subjectID)
	if err != nil {
		return content.Topic{}, err
	}
	ids := make([]int64, len(topics))
	byID := make(map[int64]content.Topic, len(topics))
	for i, t := range topics {
		ids[i] = t.ID
		byID[t.ID] = t
	}
	scores := make(map[int64]float64, len(recs))
	for _, rec := range recs {
		scores[rec.TopicID] = rec.Score
	}

	weakest, err := confidence.SelectWeakest(ids, scores)
	if err != nil {
		return content.Topic{}, err
	}
	return byID[weakest], nil
}

// askQuestions runs the terminal prompt loop. It returns nil answers when
// the student quits.
func askQuestions(questions []quizgen.Question) ([]string, error) {
	reader := bufio.NewReader(os.Stdin)
	answers := make([]string, 0, len(questions))

	for i, q := range questions {
		fmt.Printf("Q%d. %s\n", i+1, q.Question)
		for _, opt := range q.Options {
			fmt.Printf("   %s\n", opt)
		}
		for {
			fmt.Print("Your answer (A-D, q to quit): ")
			line, err := reader.ReadString('\n')
			if err != nil {
				return nil, fmt.Errorf("read answer: %w", err)
			}
			answer := strings.TrimSpace(line)
			if strings.EqualFold(answer, "q") || strings.EqualFold(answer, "quit") {
				return nil, nil
			}
			if answer == "" {
				continue
			}
			answers = append(answers, answer)
			break
		}
		fmt.Println()
	}
	return answers, nil
}

func printSummary(summary *session.Summary) {
	fmt.Printf("Results for %q\n", summary.TopicName)
	fmt.Println(strings.Repeat("─", 60))
	for i, r := range summary.Results {
		mark := "✗"
		if r.Correct {
			mark = "✓"
		}
		fmt.Printf("%s Q%d: you answered %q, correct answer %s\n", mark, i+1, r.Submitted, r.CorrectLetter)
		if !r.Correct && r.Explanation != "" {
			fmt.Printf("   %s\n", r.Explanation)
		}
	}
	fmt.Println(strings.Repeat("─", 60))
	fmt.Printf("Score: %d/%d\n", summary.Correct, summary.Total)
	fmt.Printf("Confidence: %.3f -> %.3f (%s)\n",
		summary.PriorScore, summary.NewScore, confidence.DifficultyFor(summary.NewScore))
}
