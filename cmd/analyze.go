package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"recruit-assist/internal/ai"
	"recruit-assist/internal/ai/gemini"
	"recruit-assist/internal/logger"
	"recruit-assist/internal/matching"
	"recruit-assist/internal/recruit"
	"recruit-assist/internal/resume"
)

const (
	PromptSaveResult = "Save result to JSON"
	PromptExit       = "Exit"
)

var errExit = errors.New("exit requested")

var analyzeCmd = &cobra.Command{
	Use:   "analyze <resume-file>",
	Short: "Extract a candidate profile from a resume file and score it against a position",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		analyze(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringP("job", "p", "", "position title to score against. Prompts for a selection when unset.")
	analyzeCmd.Flags().StringP("output", "o", "", "write the matching result as JSON to this file and skip the prompt")
}

func analyze(cmd *cobra.Command, resumeFile string) {
	ctx := context.Background()

	log := newLogger()

	config, err := getConfig()
	if err != nil {
		log.Fatal("getting a config", zap.Error(err))
	}

	log.Info("starting the analysis", zap.String("version", version), zap.String("resume_file", resumeFile))

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
	logExtractionGaps(log, candidate)

	result, err := matching.NewMatcher(company).Match(candidate, job)
	if err != nil {
		log.Fatal("matching failed", zap.Error(err))
	}

	log.Info("analysis finished", logger.AnalysisFields(candidate.Name, job.PositionTitle)...)

	printResult(result, job)

	if advice := runAdvisor(ctx, config, log, candidate, job, result); advice != nil {
		printAdvice(advice)
	}

	if output := cmd.Flag("output").Value.String(); output != "" {
		if err := saveJSON(output, result); err != nil {
			log.Fatal("saving result", zap.Error(err))
		}
		log.Info("saved result", zap.String("filename", output))
		return
	}

	if err := resultPromptLoop(result, log); err != nil && !errors.Is(err, errExit) {
		log.Fatal("exiting", zap.Error(err))
	}
}

// logExtractionGaps reports the fields pattern extraction could not fill.
// Extraction is best-effort, so gaps are warnings, not errors.
func logExtractionGaps(log *zap.Logger, candidate *recruit.CandidateProfile) {
	if candidate.Name == resume.NameUnknown {
		log.Warn("candidate name not found in resume text")
	}
	if len(candidate.Skills) == 0 {
		log.Warn("no skills recognized in resume text")
	}
	if candidate.ExperienceYears == 0 {
		log.Warn("no work history recognized, experience years default to zero")
	}
}

func runAdvisor(ctx context.Context, config *Config, log *zap.Logger, candidate *recruit.CandidateProfile, job *recruit.JobRequirement, result *recruit.MatchingResult) *ai.ScreeningAdvice {
	if config == nil || config.AI == nil || !config.AI.Enabled {
		return nil
	}

	if provider := strings.TrimSpace(config.AI.Provider); provider != "" && provider != "gemini" {
		log.Warn("unsupported ai provider, skipping review", zap.String("provider", provider))
		return nil
	}

	key, err := resolveGeminiKey(config)
	if err != nil {
		log.Warn("ai review skipped",
			zap.Error(err),
			zap.String("hint", "set GEMINI_API_KEY_FILE or the 'ai.gemini.api-key-file' key in the configuration file"),
		)
		return nil
	}

	model := ""
	maxLogLength := 0
	if config.AI.Gemini != nil {
		model = config.AI.Gemini.Model
		maxLogLength = config.AI.Gemini.MaxLogLength
	}

	generator, err := gemini.NewGenerator(ctx, key, model)
	if err != nil {
		log.Warn("ai review skipped", zap.Error(err))
		return nil
	}

	advice, err := gemini.NewAdvisor(generator, log, maxLogLength).Review(ctx, candidate, job, result)
	if err != nil {
		// The rule-based result stands on its own, a failed review
		// only costs the second opinion.
		log.Warn("ai review failed", zap.Error(err))
		return nil
	}

	return advice
}

func printResult(result *recruit.MatchingResult, job *recruit.JobRequirement) {
	fmt.Println()
	fmt.Println("=== マッチング結果 ===")
	fmt.Printf("候補者: %s\n", result.CandidateName)
	fmt.Printf("ポジション: %s\n", job.PositionTitle)
	fmt.Printf("総合スコア: %.1f\n", result.OverallScore)
	fmt.Printf("  スキル適合度: %.1f\n", result.SkillMatchScore)
	fmt.Printf("  経験適合度: %.1f\n", result.ExperienceMatchScore)
	fmt.Printf("  カルチャーフィット: %.1f\n", result.CultureFitScore)
	fmt.Printf("  学歴適合度: %.1f\n", result.EducationMatchScore)
	fmt.Printf("推薦区分: %s\n", recommendationLabel(result.Recommendation))

	fmt.Println()
	fmt.Println("--- 詳細分析 ---")
	for _, key := range []string{"skill_analysis", "experience_analysis", "culture_analysis", "education_analysis"} {
		if line, ok := result.DetailedAnalysis[key]; ok {
			fmt.Println(line)
		}
	}

	fmt.Println()
	fmt.Println("--- 面接での重点確認事項 ---")
	for _, area := range result.InterviewFocusAreas {
		fmt.Printf("- %s\n", area)
	}
}

func recommendationLabel(r recruit.Recommendation) string {
	switch r {
	case recruit.RecommendationPass:
		return "合格 (pass)"
	case recruit.RecommendationInterview:
		return "要面接 (interview)"
	case recruit.RecommendationReject:
		return "不合格 (reject)"
	default:
		return r.String()
	}
}

func printAdvice(advice *ai.ScreeningAdvice) {
	fmt.Println()
	fmt.Println("--- AIセカンドオピニオン ---")
	if advice.Summary != "" {
		fmt.Println(advice.Summary)
	}
	for _, s := range advice.Strengths {
		fmt.Printf("+ %s\n", s)
	}
	for _, c := range advice.Concerns {
		fmt.Printf("! %s\n", c)
	}
}

func resultPromptLoop(result *recruit.MatchingResult, log *zap.Logger) error {
	prompt := promptui.Select{
		Label: "Proceed?",
		Items: []string{PromptSaveResult, PromptExit},
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			return err
		}

		switch action {
		case PromptSaveResult:
			filename := fmt.Sprintf("analysis_%s.json", time.Now().Format("20060102_150405"))
			if err := saveJSON(filename, result); err != nil {
				return err
			}
			log.Info("saved result", zap.String("filename", filename))
		case PromptExit:
			return errExit
		default:
			return fmt.Errorf("invalid action: %s", action)
		}
	}
}

func saveJSON(filename string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", filename, err)
	}
	return nil
}
