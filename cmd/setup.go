package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"recruit-assist/internal/recruit"
)

const (
	PromptYes = "Yes"
	PromptNo  = "No"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create or replace the company profile and job requirement documents",
}

var setupCompanyCmd = &cobra.Command{
	Use:   "company",
	Short: "Interactively create the company profile",
	Run: func(_ *cobra.Command, _ []string) {
		setupCompany()
	},
}

var setupJobCmd = &cobra.Command{
	Use:   "job",
	Short: "Interactively add a job requirement to the catalog",
	Run: func(_ *cobra.Command, _ []string) {
		setupJob()
	},
}

func init() {
	rootCmd.AddCommand(setupCmd)
	setupCmd.AddCommand(setupCompanyCmd)
	setupCmd.AddCommand(setupJobCmd)
}

func setupCompany() {
	log := newLogger()

	company := &recruit.CompanyProfile{}

	var err error
	if company.CompanyName, err = promptText("会社名", true); err != nil {
		log.Fatal("reading input", zap.Error(err))
	}
	if company.Mission, err = promptText("ミッション", false); err != nil {
		log.Fatal("reading input", zap.Error(err))
	}
	if company.Vision, err = promptText("ビジョン", false); err != nil {
		log.Fatal("reading input", zap.Error(err))
	}
	if company.Values, err = promptList("バリュー (カンマ区切り)"); err != nil {
		log.Fatal("reading input", zap.Error(err))
	}
	if company.CultureKeywords, err = promptList("カルチャーキーワード (カンマ区切り)"); err != nil {
		log.Fatal("reading input", zap.Error(err))
	}
	if company.WorkStyle, err = promptList("働き方 (カンマ区切り)"); err != nil {
		log.Fatal("reading input", zap.Error(err))
	}

	st := newStore(log)
	if err := st.SaveCompany(company); err != nil {
		log.Fatal("saving company profile", zap.Error(err))
	}

	log.Info("company profile saved", zap.String("company", company.CompanyName))
}

func setupJob() {
	log := newLogger()

	job := &recruit.JobRequirement{}

	var err error
	if job.PositionTitle, err = promptText("ポジション名", true); err != nil {
		log.Fatal("reading input", zap.Error(err))
	}
	if job.Department, err = promptText("部署", false); err != nil {
		log.Fatal("reading input", zap.Error(err))
	}
	if job.RequiredSkills, err = promptList("必須スキル (カンマ区切り)"); err != nil {
		log.Fatal("reading input", zap.Error(err))
	}
	if job.PreferredSkills, err = promptList("歓迎スキル (カンマ区切り)"); err != nil {
		log.Fatal("reading input", zap.Error(err))
	}

	level, err := promptSelect("経験レベル", []string{
		string(recruit.ExperienceJunior),
		string(recruit.ExperienceMid),
		string(recruit.ExperienceSenior),
	})
	if err != nil {
		log.Fatal("reading input", zap.Error(err))
	}
	job.ExperienceLevel = recruit.ExperienceLevel(level)

	if job.RequiredYears, err = promptInt("必要経験年数"); err != nil {
		log.Fatal("reading input", zap.Error(err))
	}
	if job.EducationLevel, err = promptText("学歴要件 (例: 大学)", false); err != nil {
		log.Fatal("reading input", zap.Error(err))
	}
	if job.SalaryRange.Min, err = promptInt("年収下限 (万円)"); err != nil {
		log.Fatal("reading input", zap.Error(err))
	}
	if job.SalaryRange.Max, err = promptInt("年収上限 (万円)"); err != nil {
		log.Fatal("reading input", zap.Error(err))
	}
	if job.EmploymentType, err = promptText("雇用形態 (例: 正社員)", false); err != nil {
		log.Fatal("reading input", zap.Error(err))
	}
	if job.RemoteWork, err = promptYesNo("リモートワーク可"); err != nil {
		log.Fatal("reading input", zap.Error(err))
	}
	if job.TravelRequired, err = promptYesNo("出張あり"); err != nil {
		log.Fatal("reading input", zap.Error(err))
	}

	st := newStore(log)
	if err := st.SaveJob(job); err != nil {
		log.Fatal("saving job requirement", zap.Error(err))
	}

	log.Info("job requirement saved", zap.String("position", job.PositionTitle))
}

func promptText(label string, required bool) (string, error) {
	prompt := promptui.Prompt{Label: label}
	if required {
		prompt.Validate = func(input string) error {
			if strings.TrimSpace(input) == "" {
				return fmt.Errorf("%s is required", label)
			}
			return nil
		}
	}

	value, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

// promptList reads a comma separated list. Both ASCII and Japanese commas
// are accepted as separators.
func promptList(label string) ([]string, error) {
	value, err := promptText(label, false)
	if err != nil {
		return nil, err
	}
	if value == "" {
		return nil, nil
	}

	value = strings.ReplaceAll(value, "、", ",")
	parts := strings.Split(value, ",")

	items := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items, nil
}

func promptInt(label string) (int, error) {
	prompt := promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			n, err := strconv.Atoi(strings.TrimSpace(input))
			if err != nil {
				return fmt.Errorf("%s must be a number", label)
			}
			if n < 0 {
				return fmt.Errorf("%s must not be negative", label)
			}
			return nil
		},
	}

	value, err := prompt.Run()
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(value))
}

func promptSelect(label string, items []string) (string, error) {
	prompt := promptui.Select{Label: label, Items: items}
	_, selected, err := prompt.Run()
	return selected, err
}

func promptYesNo(label string) (bool, error) {
	selected, err := promptSelect(label, []string{PromptYes, PromptNo})
	if err != nil {
		return false, err
	}
	return selected == PromptYes, nil
}
