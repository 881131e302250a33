// Package i18n holds the static UI string table, the supported language list,
// and locale helpers for matching and number formatting.
package i18n

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vbonduro/menuscan/internal/domain"
)

// DefaultCode is the language used whenever a code or key is missing.
const DefaultCode = "en-US"

// Key identifies a UI string.
type Key string

const (
	LanguageTitle       Key = "language.title"
	CommonBack          Key = "common.back"
	UploadTitle         Key = "upload.title"
	UploadSubtitle      Key = "upload.subtitle"
	UploadCamera        Key = "upload.camera"
	UploadGallery       Key = "upload.gallery"
	UploadAnalyze       Key = "upload.analyze"
	UploadNoImages      Key = "upload.noImages"
	UploadAddPage       Key = "upload.addPage"
	ProcessingTitle     Key = "processing.title"
	OrderingTitle       Key = "ordering.title"
	OrderingRescan      Key = "ordering.rescan"
	OrderingAdd         Key = "ordering.add"
	OrderingTotalItems  Key = "ordering.totalItems"
	OrderingViewOrder   Key = "ordering.viewOrder"
	SummaryTitle        Key = "summary.title"
	SummaryShowStaff    Key = "summary.showStaff"
	SummarySpeechBubble Key = "summary.speechBubble"
	SummarySpeechSub    Key = "summary.speechSub"
	SummaryTotal        Key = "summary.total"
	SummaryFinish       Key = "summary.finish"
	NoticeNoItems       Key = "notice.noItems"
	NoticeError         Key = "notice.error"
	NoticeInvalidKey    Key = "notice.invalidKey"
	NoticeMissingKey    Key = "notice.missingKey"
)

var languages = []domain.LanguageOption{
	{Code: "zh-TW", Label: "Traditional Chinese", NativeLabel: "繁體中文"},
	{Code: "en-US", Label: "English", NativeLabel: "English"},
	{Code: "ko-KR", Label: "Korean", NativeLabel: "한국어"},
	{Code: "fr-FR", Label: "French", NativeLabel: "Français"},
	{Code: "es-ES", Label: "Spanish", NativeLabel: "Español"},
	{Code: "ja-JP", Label: "Japanese", NativeLabel: "日本語"},
}

// Languages returns the supported languages in display order.
func Languages() []domain.LanguageOption {
	out := make([]domain.LanguageOption, len(languages))
	copy(out, languages)
	return out
}

// Find looks up a supported language by its code.
func Find(code string) (domain.LanguageOption, bool) {
	for _, l := range languages {
		if l.Code == code {
			return l, true
		}
	}
	return domain.LanguageOption{}, false
}

// T returns the text for key in the language identified by code.
func T(code string, key Key) string {
	if table, ok := translations[code]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	if s, ok := translations[DefaultCode][key]; ok {
		return s
	}
	return string(key)
}

// LoadingSteps returns the progress captions cycled on the processing screen.
func LoadingSteps(code string) []string {
	if steps, ok := loadingSteps[code]; ok {
		return steps
	}
	return loadingSteps[DefaultCode]
}

// matchOrder lists the default language first: language.Matcher falls back
// to the first supported tag.
var matchOrder = func() []domain.LanguageOption {
	def, _ := Find(DefaultCode)
	out := []domain.LanguageOption{def}
	for _, l := range languages {
		if l.Code != DefaultCode {
			out = append(out, l)
		}
	}
	return out
}()

var matcher = func() language.Matcher {
	tags := make([]language.Tag, len(matchOrder))
	for i, l := range matchOrder {
		tags[i] = language.MustParse(l.Code)
	}
	return language.NewMatcher(tags)
}()

// Match picks the supported language that best fits an Accept-Language
// header value.
func Match(acceptLanguage string) domain.LanguageOption {
	prefs, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(prefs) == 0 {
		return matchOrder[0]
	}
	_, idx, conf := matcher.Match(prefs...)
	if conf == language.No {
		return matchOrder[0]
	}
	return matchOrder[idx]
}

// FormatPrice renders amount with the digit grouping of the given language.
func FormatPrice(code string, amount decimal.Decimal) string {
	tag, err := language.Parse(code)
	if err != nil {
		tag = language.AmericanEnglish
	}
	p := message.NewPrinter(tag)
	if amount.IsInteger() {
		return p.Sprintf("%d", amount.IntPart())
	}

	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Abs()
	}
	rounded := amount.Round(2)
	fixed := rounded.StringFixed(2)
	frac := fixed[strings.IndexByte(fixed, '.')+1:]
	return sign + p.Sprintf("%d", rounded.IntPart()) + decimalSeparator(p) + frac
}

// decimalSeparator returns the separator p places between integer and
// fraction digits.
func decimalSeparator(p *message.Printer) string {
	s := p.Sprintf("%.1f", 0.5)
	return strings.TrimSuffix(strings.TrimPrefix(s, "0"), "5")
}
