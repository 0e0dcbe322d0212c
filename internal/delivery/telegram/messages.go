// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aburaya/english-trainer-bot/internal/domain/entities"
	"github.com/aburaya/english-trainer-bot/internal/service"
)

// User-facing texts. The audience practices English from Arabic, so
// guidance is in Arabic.
const (
	msgWelcome = "أهلًا بك 👋\n" +
		"بوت تدريب إنجليزي مخصص لتحليل البيانات والبزنس.\n\n" +
		"الأوامر:\n" +
		"/level – اختيار المستوى (beginner | intermediate | advanced)\n" +
		"/direction – اتجاه الترجمة (en2ar | ar2en)\n" +
		"/train – ابدأ التمرين\n" +
		"/next – سؤال تالي  |  /skip – تخطي  |  /hint – تلميح\n" +
		"/speak – نطق الجملة الحالية\n" +
		"/report – ملخص آخر ٧ أيام\n" +
		"/help – المساعدة\n"

	msgHelp = "— طريقة العمل —\n" +
		"١) اختر /level و /direction\n" +
		"٢) /train لبدء التمرين\n" +
		"٣) أجب بترجمة الجملة.\n" +
		"✔️ البوت يصحّح بفحص تقارب المعنى (fuzzy)."

	msgUseLevel = "اكتب مثلًا:\n" +
		"/level beginner\n/level intermediate\n/level advanced"

	msgUseDirection = "اختر:\n" +
		"/direction en2ar (ترجم من إنجليزي لعربي)\n" +
		"/direction ar2en (ترجم من عربي لإنجليزي)"

	msgLevelUnavailable = "البيانات غير متاحة لهذا المستوى."
	msgStartFirst       = "ابدأ أولًا بـ /train"
	msgIdleGuidance     = "استخدم /train للبدء، أو /help للمساعدة."
	msgNoAttempts       = "لا توجد محاولات خلال آخر ٧ أيام.\nابدأ التمرين بـ /train!"
	msgInternalError    = "حدث خطأ ما. حاول مرة أخرى لاحقًا."
)

// newPlainMessage creates a plain message without a parse mode.
func newPlainMessage(chatID int64, text string) tgbotapi.MessageConfig {
	return tgbotapi.NewMessage(chatID, text)
}

// newMarkdownMessage creates a message with Markdown parse mode.
func newMarkdownMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	return msg
}

func formatLevelSet(level entities.Level) string {
	return fmt.Sprintf("تم ضبط المستوى إلى: %s", level)
}

func formatDirectionSet(direction entities.Direction) string {
	return fmt.Sprintf("تم ضبط اتجاه التمرين إلى: %s", direction)
}

// formatPrompt renders one question.
func formatPrompt(p *service.Prompt) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("المستوى: *%s* | الاتجاه: *%s*\n", p.Level, p.Direction))

	if p.Direction == entities.DirectionENToAR {
		sb.WriteString("🔹 ترجم إلى العربية:\n")
	} else {
		sb.WriteString("🔹 ترجم إلى الإنجليزية:\n")
	}
	sb.WriteString(fmt.Sprintf("`%s`", p.Text))

	return sb.String()
}

// formatCorrect renders the success reply with up to two examples.
func formatCorrect(res *service.AnswerResult) string {
	var sb strings.Builder

	sb.WriteString("✅ صحيح! ممتاز.")

	examples := res.Examples
	if len(examples) > 2 {
		examples = examples[:2]
	}
	if len(examples) > 0 {
		sb.WriteString("\n\nمثال:\n• ")
		sb.WriteString(strings.Join(examples, "\n• "))
	}

	return sb.String()
}

// formatIncorrect renders the failure reply with score and the
// correct answer.
func formatIncorrect(res *service.AnswerResult) string {
	return fmt.Sprintf(
		"❌ مو دقيق (%.1f%%).\nالإجابة الصحيحة:\n• %s\nجرب السؤال التالي بـ /next أو تلميح بـ /hint",
		res.Score,
		res.Expected,
	)
}

func formatHint(hint string, lang entities.Lang) string {
	if lang == entities.LangArabic {
		return fmt.Sprintf("تلميح (بالعربي): %s", hint)
	}
	return fmt.Sprintf("Hint (EN): %s", hint)
}

// formatReport renders the 7-day windowed summary.
func formatReport(summary *service.ReportSummary) string {
	if summary.Empty() {
		return msgNoAttempts
	}

	var sb strings.Builder

	sb.WriteString("📊 ملخص آخر ٧ أيام\n")
	sb.WriteString(fmt.Sprintf("عدد المحاولات: %d\n", summary.Count))
	sb.WriteString(fmt.Sprintf("متوسط الدقة: %.1f%%\n", summary.AverageScore))

	if len(summary.Recent) > 0 {
		sb.WriteString("\nآخر المحاولات:\n")
		for _, a := range summary.Recent {
			sb.WriteString(fmt.Sprintf("• %s → %s (%.1f%%)\n", a.ExpectedText, a.GivenText, a.Score))
		}
	}

	return sb.String()
}
