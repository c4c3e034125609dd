package tui

import "github.com/shristy0611/Wisdom-Bridge/internal/quote"

// exploreTheme is one entry on the theme exploration page.
type exploreTheme struct {
	en string
	ja string
}

func (t exploreTheme) label(lang quote.Language) string {
	if lang == quote.LangJA {
		return t.ja
	}
	return t.en
}

var exploreThemes = []exploreTheme{
	{en: "Courage", ja: "勇気"},
	{en: "Hope", ja: "希望"},
	{en: "Perseverance", ja: "忍耐"},
	{en: "Compassion", ja: "慈悲"},
	{en: "Wisdom", ja: "智慧"},
	{en: "Friendship", ja: "友情"},
	{en: "Community", ja: "地域社会"},
	{en: "Human Revolution", ja: "人間革命"},
	{en: "Peace", ja: "平和"},
	{en: "Mission", ja: "使命"},
	{en: "Dialogue", ja: "対話"},
	{en: "Youth", ja: "青年"},
}
