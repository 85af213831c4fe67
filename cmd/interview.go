package cmd

import (
	"errors"
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"recruit-assist/internal/interview"
	"recruit-assist/internal/logger"
	"recruit-assist/internal/matching"
	"recruit-assist/internal/recruit"
	"recruit-assist/internal/resume"
)

var interviewCmd = &cobra.Command{
	Use:   "interview <resume-file>",
	Short: "Generate a stage-specific interview plan for a candidate",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		interviewPlan(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(interviewCmd)

	interviewCmd.Flags().StringP("job", "p", "", "position title to plan for. Prompts for a selection when unset.")
	interviewCmd.Flags().StringP("stage", "s", "first", "interview stage: first, second or final")
	interviewCmd.Flags().Int64("seed", 0, "seed for question sampling. Omit for a time-based seed.")
	interviewCmd.Flags().StringP("output", "o", "", "write the plan as JSON to this file instead of printing it")
}

func interviewPlan(cmd *cobra.Command, resumeFile string) {
	log := newLogger()

	stage, err := recruit.ParseStage(cmd.Flag("stage").Value.String())
	if err != nil {
		log.Fatal("parsing stage", zap.Error(err))
	}

	st := newStore(log)

	company, err := st.LoadCompany()
	if err != nil {
		log.Fatal("loading company profile",
			zap.Error(err),
			zap.String("hint", "run '"+app+" setup company' to create it"),
		)
	}

	jobs, err := st.LoadJobs()
	if err != nil {
		log.Fatal("loading job requirements",
			zap.Error(err),
			zap.String("hint", "run '"+app+" setup job' to create one"),
		)
	}

	job, err := selectJob(jobs, cmd.Flag("job").Value.String(), log)
	if err != nil {
		log.Fatal("selecting a position", zap.Error(err))
	}

	text, err := os.ReadFile(resumeFile)
	if err != nil {
		log.Fatal("reading resume file", zap.Error(err))
	}

	candidate := resume.NewExtractor().Extract(string(text))

	result, err := matching.NewMatcher(company).Match(candidate, job)
	if err != nil {
		log.Fatal("matching failed", zap.Error(err))
	}

	generator := interview.NewGenerator(interview.DefaultRegistry(), seedSource(cmd.Flags()))

	plan, err := generator.GeneratePlan(candidate, job, result, stage)
	if err != nil {
		if errors.Is(err, recruit.ErrUnknownStage) {
			log.Fatal("unknown interview stage", zap.String("stage", stage.String()))
		}
		log.Fatal("generating interview plan", zap.Error(err))
	}

	log.Info("interview plan generated",
		append(logger.AnalysisFields(candidate.Name, job.PositionTitle),
			zap.String("stage", stage.String()),
			zap.Int("questions", len(plan.Questions)),
		)...,
	)

	if output := cmd.Flag("output").Value.String(); output != "" {
		if err := saveJSON(output, plan); err != nil {
			log.Fatal("saving plan", zap.Error(err))
		}
		log.Info("saved plan", zap.String("filename", output))
		return
	}

	printPlan(plan)
}

// seedSource returns a deterministic sampling source when the seed flag
// was set explicitly, any value included. An unset flag yields nil so the
// generator seeds from the current time.
func seedSource(flags *pflag.FlagSet) rand.Source {
	if !flags.Changed("seed") {
		return nil
	}

	seed, err := flags.GetInt64("seed")
	if err != nil {
		return nil
	}
	return rand.NewSource(seed)
}

func printPlan(plan *interview.Plan) {
	fmt.Println()
	fmt.Printf("=== %s 面接計画 ===\n", plan.Stage.Label())
	fmt.Printf("候補者: %s\n", plan.CandidateName)
	fmt.Printf("ポジション: %s\n", plan.Position)
	fmt.Printf("所要時間: %d分\n", plan.DurationMinutes)

	fmt.Println()
	fmt.Println("--- 質問 ---")
	for i, q := range plan.Questions {
		fmt.Printf("%d. [%s] %s\n", i+1, q.Category.Label(), q.Question)
		for _, follow := range q.FollowUpQuestions {
			fmt.Printf("   追加質問: %s\n", follow)
		}
		if q.TimeLimitMinutes > 0 {
			fmt.Printf("   目安時間: %d分\n", q.TimeLimitMinutes)
		}
	}

	fmt.Println()
	fmt.Println("--- 評価基準 ---")
	for _, c := range plan.EvaluationCriteria {
		fmt.Printf("- %s (重み %.2f): %s\n", c.Name, c.Weight, c.Description)
	}

	if len(plan.FocusAreas) > 0 {
		fmt.Println()
		fmt.Println("--- 重点確認事項 ---")
		for _, area := range plan.FocusAreas {
			fmt.Printf("- %s\n", area)
		}
	}

	if len(plan.SpecialNotes) > 0 {
		fmt.Println()
		fmt.Println("--- 特記事項 ---")
		for _, note := range plan.SpecialNotes {
			fmt.Printf("%s\n", note)
		}
	}
}
