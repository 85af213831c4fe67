package interview

import "recruit-assist/internal/recruit"

// defaultQuestions returns the built-in question bank. Every category that
// appears in a stage quota has at least one template for that stage.
func defaultQuestions() []Question {
	return []Question{
		{
			ID:       "tech_001",
			Category: CategoryTechnical,
			Stage:    recruit.StageFirst,
			Question: "これまでの開発経験で最も技術的に困難だったプロジェクトについて教えてください。どのような課題があり、どう解決しましたか？",
			FollowUpQuestions: []string{
				"その技術選択の理由は何でしたか？",
				"他の選択肢は検討しましたか？",
				"結果的に最適な選択だったと思いますか？",
			},
			EvaluationPoints: []string{
				"技術的な深い理解があるか",
				"問題解決のアプローチが論理的か",
				"技術選択の判断力があるか",
				"学習意欲・継続的改善の姿勢があるか",
			},
			GoodAnswerExample: "具体的な技術課題を明確に説明し、複数の解決策を検討した上で選択理由を論理的に説明できる",
			RedFlags: []string{
				"技術的な詳細を説明できない",
				"問題の本質を理解していない",
				"他者任せの解決方法しか提示しない",
			},
			TimeLimitMinutes: 10,
		},
		{
			ID:       "tech_002",
			Category: CategoryTechnical,
			Stage:    recruit.StageSecond,
			Question: "コードレビューで指摘されることが多い項目は何ですか？また、それをどう改善していますか？",
			FollowUpQuestions: []string{
				"チーム内でのコードレビュー文化はどうでしたか？",
				"コードの品質を保つために普段心がけていることは？",
				"新しい技術やライブラリを導入する際の判断基準は？",
			},
			EvaluationPoints: []string{
				"自己省察能力があるか",
				"コード品質への意識があるか",
				"チーム開発への理解があるか",
				"継続的な改善意識があるか",
			},
			GoodAnswerExample: "具体的な改善例を示し、チーム全体のコード品質向上に貢献した経験がある",
			RedFlags: []string{
				"指摘されたことがないと回答",
				"改善意識が見られない",
				"他人のせいにする発言",
			},
			TimeLimitMinutes: 8,
		},
		{
			ID:       "comm_001",
			Category: CategoryCommunication,
			Stage:    recruit.StageFirst,
			Question: "技術的でない方（営業や企画など）に対して、複雑な技術内容を説明した経験はありますか？その時に工夫したことを教えてください。",
			FollowUpQuestions: []string{
				"相手の理解度をどう確認していましたか？",
				"説明が伝わらなかった場合、どう対応しましたか？",
				"資料やツールは活用しましたか？",
			},
			EvaluationPoints: []string{
				"相手の立場に立って考えられるか",
				"分かりやすい説明ができるか",
				"コミュニケーションスキルがあるか",
				"柔軟な対応力があるか",
			},
			GoodAnswerExample: "相手のレベルに合わせて説明方法を変え、理解を確認しながら進めることができる",
			RedFlags: []string{
				"専門用語ばかりで説明する",
				"相手の反応を見ない",
				"一方的な説明に終始",
			},
			TimeLimitMinutes: 7,
		},
		{
			ID:       "comm_002",
			Category: CategoryCommunication,
			Stage:    recruit.StageSecond,
			Question: "チーム内で意見が対立した際、どのように解決に導いた経験がありますか？",
			FollowUpQuestions: []string{
				"対立の原因は何でしたか？",
				"あなたが取った具体的な行動は？",
				"結果はどうなりましたか？学んだことは？",
			},
			EvaluationPoints: []string{
				"対立を建設的に解決できるか",
				"冷静な判断力があるか",
				"チームの調和を重視するか",
				"リーダーシップの素質があるか",
			},
			GoodAnswerExample: "双方の意見を整理し、共通の目標に向けて合意形成を図ることができる",
			RedFlags: []string{
				"対立を避ける姿勢",
				"一方的な主張のみ",
				"感情的な対応",
			},
			TimeLimitMinutes: 10,
		},
		{
			ID:       "lead_001",
			Category: CategoryLeadership,
			Stage:    recruit.StageSecond,
			Question: "プロジェクトでリーダーシップを発揮した経験について具体的に教えてください。チームのモチベーション維持や目標達成のために何を行いましたか？",
			FollowUpQuestions: []string{
				"チームメンバーの個性をどう把握していましたか？",
				"困難な状況でのチームマネジメントは？",
				"失敗した場合の責任の取り方は？",
			},
			EvaluationPoints: []string{
				"リーダーとしての責任感があるか",
				"チームメンバーを適切に動機づけられるか",
				"目標達成への戦略的思考があるか",
				"困難な状況での判断力があるか",
			},
			GoodAnswerExample: "メンバーの強みを活かしながら、明確な目標設定と進捗管理でチームを成功に導いた",
			RedFlags: []string{
				"指示だけのマネジメント",
				"メンバーへの配慮不足",
				"責任転嫁の傾向",
			},
			TimeLimitMinutes: 12,
		},
		{
			ID:       "prob_001",
			Category: CategoryProblemSolving,
			Stage:    recruit.StageFirst,
			Question: "予期しない障害やバグが発生した時の対応プロセスを教えてください。最近経験した具体例があれば併せてお聞かせください。",
			FollowUpQuestions: []string{
				"原因特定のためのアプローチは？",
				"ステークホルダーへの報告・連絡は？",
				"再発防止のための対策は？",
			},
			EvaluationPoints: []string{
				"論理的な問題解決ができるか",
				"冷静な状況判断ができるか",
				"適切な報連相ができるか",
				"予防的思考があるか",
			},
			GoodAnswerExample: "体系的なアプローチで原因を特定し、適切な報告と迅速な解決を実現できる",
			RedFlags: []string{
				"場当たり的な対応",
				"報告を怠る",
				"原因分析が浅い",
			},
			TimeLimitMinutes: 8,
		},
		{
			ID:       "team_001",
			Category: CategoryTeamwork,
			Stage:    recruit.StageSecond,
			Question: "職種や立場の異なるメンバーと協力してプロジェクトを進めた経験を教えてください。あなたはチームの中でどのような役割を担いましたか？",
			FollowUpQuestions: []string{
				"メンバー間の情報共有はどう工夫しましたか？",
				"協力が得られないメンバーがいた場合はどうしましたか？",
			},
			EvaluationPoints: []string{
				"チーム内での自分の役割を客観視できるか",
				"多様な立場への配慮があるか",
				"チームの成果を優先できるか",
			},
			GoodAnswerExample: "自分の役割と貢献を具体的に説明し、他メンバーの成果にも言及できる",
			RedFlags: []string{
				"自分の成果のみを強調する",
				"他メンバーへの関心が薄い",
			},
			TimeLimitMinutes: 8,
		},
		{
			ID:       "team_002",
			Category: CategoryTeamwork,
			Stage:    recruit.StageSecond,
			Question: "チームの生産性や雰囲気を改善するために、ご自身から働きかけた経験はありますか？",
			FollowUpQuestions: []string{
				"改善のきっかけは何でしたか？",
				"周囲の反応はどうでしたか？",
			},
			EvaluationPoints: []string{
				"主体的にチームへ貢献できるか",
				"改善の効果を測る視点があるか",
			},
			GoodAnswerExample: "課題を自分事として捉え、小さな改善を継続して定着させた経験を語れる",
			RedFlags: []string{
				"受け身の姿勢に終始する",
				"改善を他人任せにする",
			},
			TimeLimitMinutes: 7,
		},
		{
			ID:       "ethic_001",
			Category: CategoryWorkEthic,
			Stage:    recruit.StageFinal,
			Question: "仕事をする上で大切にしている価値観を教えてください。その価値観が試された場面はありましたか？",
			FollowUpQuestions: []string{
				"その価値観はどのように形成されましたか？",
				"会社の方針と価値観が衝突した場合はどうしますか？",
			},
			EvaluationPoints: []string{
				"職業観が明確か",
				"誠実さ・責任感があるか",
				"当社の価値観と整合するか",
			},
			GoodAnswerExample: "具体的なエピソードを交えて自分の価値観と行動の一貫性を説明できる",
			RedFlags: []string{
				"価値観を言語化できない",
				"責任を回避する姿勢",
			},
			TimeLimitMinutes: 10,
		},
		{
			ID:       "ethic_002",
			Category: CategoryWorkEthic,
			Stage:    recruit.StageFinal,
			Question: "納期や品質のプレッシャーが高い状況で、どのように仕事の優先順位を判断しますか？",
			FollowUpQuestions: []string{
				"判断に迷った場合は誰に相談しますか？",
				"妥協できない一線はどこですか？",
			},
			EvaluationPoints: []string{
				"プロ意識があるか",
				"判断基準が明確か",
			},
			GoodAnswerExample: "品質・納期・関係者への影響を整理した上で判断の根拠を説明できる",
			RedFlags: []string{
				"場当たり的な判断",
				"品質軽視の発言",
			},
			TimeLimitMinutes: 8,
		},
		{
			ID:       "adapt_001",
			Category: CategoryAdaptability,
			Stage:    recruit.StageFinal,
			Question: "環境や役割が大きく変わった経験について教えてください。変化にどう適応しましたか？",
			FollowUpQuestions: []string{
				"適応に苦労した点は何ですか？",
				"その経験から学んだことは？",
			},
			EvaluationPoints: []string{
				"変化を前向きに捉えられるか",
				"新しい環境での学習姿勢があるか",
			},
			GoodAnswerExample: "変化を成長の機会と捉え、具体的な行動で適応した経験を語れる",
			RedFlags: []string{
				"変化への抵抗感が強い",
				"受け身の適応に終始",
			},
			TimeLimitMinutes: 8,
		},
		{
			ID:       "creat_001",
			Category: CategoryCreativity,
			Stage:    recruit.StageFinal,
			Question: "既存のやり方にとらわれず、新しいアイデアで課題を解決した経験はありますか？",
			FollowUpQuestions: []string{
				"そのアイデアはどこから生まれましたか？",
				"周囲をどう巻き込みましたか？",
			},
			EvaluationPoints: []string{
				"発想の柔軟性があるか",
				"アイデアを実行に移せるか",
			},
			GoodAnswerExample: "課題の本質を捉え直し、実現可能な形でアイデアを具体化した経験を語れる",
			RedFlags: []string{
				"アイデアだけで実行が伴わない",
				"既存手法の否定に終始",
			},
			TimeLimitMinutes: 8,
		},
	}
}

// defaultCriteria returns the fixed five-criteria rubric.
func defaultCriteria() []Criteria {
	return []Criteria{
		{
			Category:    CategoryTechnical,
			Name:        "技術的専門知識",
			Description: "職務に必要な技術スキルの深さと幅",
			Levels: map[string]string{
				"5": "優秀 - 専門分野で高度な知識を持ち、新技術への適応も早い",
				"4": "良好 - 必要な技術スキルを十分に持ち、実践的に活用できる",
				"3": "普通 - 基本的な技術スキルは持っているが、応用力に課題",
				"2": "要改善 - 技術スキルが不足しており、研修が必要",
				"1": "不適合 - 技術的な理解が乏しく、職務遂行が困難",
			},
			Weight: 0.3,
		},
		{
			Category:    CategoryCommunication,
			Name:        "コミュニケーション能力",
			Description: "口頭・文章での意思疎通の効果性",
			Levels: map[string]string{
				"5": "優秀 - 相手に応じた効果的なコミュニケーションができる",
				"4": "良好 - 明確で分かりやすいコミュニケーションができる",
				"3": "普通 - 基本的なコミュニケーションはできるが、改善の余地あり",
				"2": "要改善 - コミュニケーションに課題があり、誤解を生じやすい",
				"1": "不適合 - コミュニケーション能力が著しく不足",
			},
			Weight: 0.25,
		},
		{
			Category:    CategoryProblemSolving,
			Name:        "問題解決能力",
			Description: "課題の発見・分析・解決の能力",
			Levels: map[string]string{
				"5": "優秀 - 複雑な問題も体系的に分析し、創造的な解決策を提示",
				"4": "良好 - 論理的思考で問題を解決できる",
				"3": "普通 - 基本的な問題解決はできるが、複雑な課題には支援が必要",
				"2": "要改善 - 問題解決のアプローチが不十分",
				"1": "不適合 - 問題解決能力が不足",
			},
			Weight: 0.2,
		},
		{
			Category:    CategoryTeamwork,
			Name:        "チームワーク",
			Description: "チーム内での協調性と貢献度",
			Levels: map[string]string{
				"5": "優秀 - チームの結束を高め、メンバーのパフォーマンス向上に貢献",
				"4": "良好 - チームでの協働が得意で、信頼関係を築ける",
				"3": "普通 - チームでの作業はできるが、積極性に欠ける",
				"2": "要改善 - チームワークに課題があり、協調性を高める必要",
				"1": "不適合 - チームでの作業に支障をきたす",
			},
			Weight: 0.15,
		},
		{
			Category:    CategoryAdaptability,
			Name:        "適応力・学習意欲",
			Description: "変化への対応力と継続的な学習姿勢",
			Levels: map[string]string{
				"5": "優秀 - 変化を積極的に受け入れ、継続的にスキルアップしている",
				"4": "良好 - 新しい環境や技術に適応でき、学習意欲も高い",
				"3": "普通 - 基本的な適応力はあるが、積極性に欠ける",
				"2": "要改善 - 変化への対応が苦手で、学習意欲も低い",
				"1": "不適合 - 適応力が著しく不足",
			},
			Weight: 0.1,
		},
	}
}
