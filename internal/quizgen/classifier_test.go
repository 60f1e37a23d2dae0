package quizgen_test

import (
	"testing"

	"github.com/sharc777/allam-lambda/internal/quizgen"
)

func TestKeywordClassifier(t *testing.T) {
	c := quizgen.NewKeywordClassifier()

	cases := []struct {
		name string
		text string
		want quizgen.Section
	}{
		{"WesternDigits", "إذا كان س = 5 فما قيمة 2س؟", quizgen.SectionQuantitative},
		{"ArabicIndicDigits", "ما ناتج ١٢ مقسوماً على ٣؟", quizgen.SectionQuantitative},
		{"MathKeyword", "أوجد مساحة المستطيل الذي طوله ضعف عرضه", quizgen.SectionQuantitative},
		{"ExtendedArabicIndicDigits", "ما ناتج ۱۲ ناقص ۵؟", quizgen.SectionQuantitative},
		{"ExtendedDigitsOnly", "اختر الأكبر: ۷ أم ۹", quizgen.SectionQuantitative},
		{"Symbol", "س × ص تساوي؟", quizgen.SectionQuantitative},
		{"KeywordWithPrefixes", "أكمل: الزاوية القائمة بالمثلث تقابل الوتر", quizgen.SectionQuantitative},
		{"KeywordWithArticle", "ما طول ضلع المكعب إذا علمت حجمه", quizgen.SectionQuantitative},
		{"WeekdayContainsFour", "اختر الكلمة الشاذة: الأربعاء، الخميس، الجمعة، السبت", quizgen.SectionVerbal},
		{"ValueAsVerbalWord", "الأخلاق عظيمة في حياة الأمم، اختر مرادف كلمة (قيمة)", quizgen.SectionVerbal},
		{"BreakAnalogy", "قلم : كتابة :: كسر : ؟", quizgen.SectionVerbal},
		{"SizeMeaning", "ما معنى كلمة الحجم في الجملة", quizgen.SectionVerbal},
		{"QuarterAndHalf", "مضى ربع الليل ونصف النهار في الانتظار، ما الخطأ السياقي؟", quizgen.SectionVerbal},
		{"Analogy", "قلم : كتابة", quizgen.SectionVerbal},
		{"Synonym", "اختر مرادف كلمة الشجاعة", quizgen.SectionVerbal},
		{"Empty", "", quizgen.SectionVerbal},
	}
	for _, c2 := range cases {
		t.Run(c2.name, func(t *testing.T) {
			if got := c.Classify(c2.text); got != c2.want {
				t.Fatalf("Classify(%q) = %q, want %q", c2.text, got, c2.want)
			}
		})
	}
}
