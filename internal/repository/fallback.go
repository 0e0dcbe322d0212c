package repository

import "github.com/aburaya/english-trainer-bot/internal/domain/entities"

// fallbackDataset returns the built-in known-valid dataset used when
// the configured vocabulary file is missing or malformed.
func fallbackDataset() map[entities.Level][]entities.VocabItem {
	return map[entities.Level][]entities.VocabItem{
		entities.LevelBeginner: {
			{
				English:  "data",
				Arabic:   "بيانات",
				Examples: []string{"We collect data to analyze trends."},
			},
			{
				English:  "report",
				Arabic:   "تقرير",
				Examples: []string{"Please share yesterday's sales report."},
			},
			{
				English:  "chart",
				Arabic:   "مخطط",
				Examples: []string{"This chart shows monthly revenue."},
			},
		},
		entities.LevelIntermediate: {
			{
				English:  "insight",
				Arabic:   "رؤية/نتيجة تحليل",
				Examples: []string{"Turn raw data into actionable insights."},
			},
			{
				English:  "trend",
				Arabic:   "اتجاه/ميل",
				Examples: []string{"We observed a positive trend in Q4."},
			},
			{
				English:  "dashboard",
				Arabic:   "لوحة معلومات",
				Examples: []string{"The dashboard helps track KPIs daily."},
			},
		},
		entities.LevelAdvanced: {
			{
				English:  "standard deviation",
				Arabic:   "الانحراف المعياري",
				Examples: []string{"We used standard deviation to measure variability."},
			},
			{
				English:  "hypothesis testing",
				Arabic:   "اختبار الفرضيات",
				Examples: []string{"Hypothesis testing validates our assumptions."},
			},
			{
				English:  "time series",
				Arabic:   "سلاسل زمنية",
				Examples: []string{"Time series models forecast monthly demand."},
			},
		},
	}
}
