package resume

import "regexp"

var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`氏名[：:\s]*([^\n\r]+)`),
	regexp.MustCompile(`名前[：:\s]*([^\n\r]+)`),
	regexp.MustCompile(`姓名[：:\s]*([^\n\r]+)`),
}

var emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

// Phone formats in priority order: hyphenated, plain 10-11 digits, international.
var phonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d{2,4}-\d{2,4}-\d{4}`),
	regexp.MustCompile(`\d{10,11}`),
	regexp.MustCompile(`\+81-\d+-\d+-\d+`),
}

var workDatePattern = regexp.MustCompile(`(\d{4})年(\d{1,2})月`)

// skillCategories fixes the iteration order so extraction output is stable
// between runs on identical text.
var skillCategories = []string{"programming", "management", "marketing", "sales", "design", "finance"}

var skillKeywords = map[string][]string{
	"programming": {"Python", "JavaScript", "Java", "C++", "React", "Vue", "Angular", "Node.js"},
	"management":  {"プロジェクト管理", "チーム管理", "マネジメント", "リーダーシップ"},
	"marketing":   {"マーケティング", "SNS運用", "広告運用", "SEO", "SEM", "分析"},
	"sales":       {"営業", "新規開拓", "顧客管理", "提案", "交渉", "クロージング"},
	"design":      {"UI/UX", "Photoshop", "Illustrator", "Figma", "デザイン思考"},
	"finance":     {"財務", "会計", "簿記", "税務", "資金調達", "投資"},
}

var educationKeywords = []string{"大学", "大学院", "短期大学", "高等学校", "専門学校"}

var certificationKeywords = []string{
	"TOEIC", "英検", "簿記", "基本情報技術者", "応用情報技術者",
	"宅建", "FP", "社労士", "税理士", "公認会計士",
}

var languageKeywords = []string{"英語", "中国語", "韓国語", "フランス語", "ドイツ語", "スペイン語"}
