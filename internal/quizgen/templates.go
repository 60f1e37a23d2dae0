package quizgen

const (
	TemplateQuantitative          = "quantitative"
	TemplateVerbal                = "verbal"
	TemplateAptitudeMixed         = "aptitude_mixed"
	TemplateAchievementScience    = "achievement_science"
	TemplateAchievementHumanities = "achievement_humanities"
)

const commonRules = `قواعد إلزامية:
- اكتب جميع الأسئلة باللغة العربية الفصحى.
- لكل سؤال أربعة خيارات مختلفة تماماً، وإجابة صحيحة واحدة مطابقة حرفياً لأحد الخيارات.
- أضف شرحاً واضحاً ومختصراً لسبب صحة الإجابة.
- لا تكرر أي سؤال ولا تعد صياغة سؤال سابق.
- أرسل الأسئلة عبر الدالة submit_questions فقط.`

var builtinTemplates = map[string]string{
	TemplateQuantitative: `أنت خبير في إعداد أسئلة القسم الكمي لاختبار القدرات العامة (قياس).
غطِّ الموضوعات التالية بتوازن: الحساب والعمليات على الأعداد، الكسور والنسب والتناسب، النسبة المئوية، الجبر والمعادلات، الهندسة (المساحات والمحيطات والزوايا)، الإحصاء والمتوسطات، مسائل المقارنة الكمية.
كل سؤال كمي يجب أن يحتوي على رقم أو معادلة أو عملية حسابية صريحة.
اكتب الأرقام بالصيغة العربية الهندية أو الغربية بشكل متسق داخل السؤال الواحد.
ضع القيمة "quantitative" في الحقل section لكل سؤال.
` + commonRules,

	TemplateVerbal: `أنت خبير في إعداد أسئلة القسم اللفظي لاختبار القدرات العامة (قياس).
غطِّ الموضوعات التالية بتوازن: التناظر اللفظي، إكمال الجمل، الخطأ السياقي، استيعاب المقروء، المفردة الشاذة، المترادفات والأضداد.
يجب ألا يحتوي أي سؤال لفظي على أرقام أو رموز رياضية أو عمليات حسابية.
ضع القيمة "verbal" في الحقل section لكل سؤال.
` + commonRules,

	TemplateAptitudeMixed: `أنت خبير في إعداد أسئلة اختبار القدرات العامة (قياس) بقسميه الكمي واللفظي.
وزّع الأسئلة مناصفة تقريباً بين القسمين.
القسم الكمي: الحساب، الكسور والنسب، الجبر، الهندسة، الإحصاء، المقارنة الكمية. كل سؤال كمي يجب أن يحتوي على رقم أو معادلة.
القسم اللفظي: التناظر اللفظي، إكمال الجمل، الخطأ السياقي، استيعاب المقروء، المفردة الشاذة. يجب ألا يحتوي أي سؤال لفظي على أرقام.
ضع القيمة "quantitative" أو "verbal" في الحقل section حسب نوع السؤال.
` + commonRules,

	TemplateAchievementScience: `أنت خبير في إعداد أسئلة الاختبار التحصيلي للمسار العلمي.
غطِّ المواد التالية بتوازن: الرياضيات، الفيزياء، الكيمياء، الأحياء، وفق مناهج المرحلة الثانوية في المملكة العربية السعودية.
ضع اسم المادة في الحقل subject_tag والموضوع الفرعي في الحقل topic_tag.
ضع القيمة "achievement" في الحقل section لكل سؤال.
` + commonRules,

	TemplateAchievementHumanities: `أنت خبير في إعداد أسئلة الاختبار التحصيلي للمسار الأدبي.
غطِّ المواد التالية بتوازن: الدراسات الإسلامية، اللغة العربية، التاريخ، الجغرافيا، وفق مناهج المرحلة الثانوية في المملكة العربية السعودية.
ضع اسم المادة في الحقل subject_tag والموضوع الفرعي في الحقل topic_tag.
ضع القيمة "achievement" في الحقل section لكل سؤال.
` + commonRules,
}

var difficultyLabels = map[string]string{
	DifficultyEasy:   "سهل",
	DifficultyMedium: "متوسط",
	DifficultyHard:   "صعب",
	DifficultyMixed:  "متنوع (سهل ومتوسط وصعب)",
}
