package tui

import "github.com/shristy0611/Wisdom-Bridge/internal/quote"

// uiText holds every user-facing string for one language.
type uiText struct {
	title            string
	homeSubtitle     string
	seekGuidance     string
	exploreThemes    string
	favorites        string
	journal          string
	langSwitch       string
	quit             string
	inputPlaceholder string
	searchHistory    string
	noHistory        string
	processing       string
	guidanceFound    string
	quoteIndicator   string
	analysis         string
	findAnother      string
	errAPIKey        string
	errFetch         string
	favoritesTitle   string
	noFavorites      string
	journalTitle     string
	noReflections    string
	reflectionEditor string
	reflectionHint   string
	exploreTitle     string
	qotdTitle        string
	qotdLoading      string
	qotdUnavailable  string
	shareTitle       string
	shareCopy        string
	shareMail        string
	shareTweet       string
	copied           string
	copyFailed       string
	updateAvailable  string
}

var textEN = uiText{
	title:            "Wisdom Bridge",
	homeSubtitle:     "Guidance from The New Human Revolution",
	seekGuidance:     "Seek Guidance",
	exploreThemes:    "Explore Themes",
	favorites:        "Favorites",
	journal:          "Journal",
	langSwitch:       "日本語",
	quit:             "Quit",
	inputPlaceholder: "e.g., courage, hope...",
	searchHistory:    "Search History",
	noHistory:        "No searches yet.",
	processing:       "Searching for guidance...",
	guidanceFound:    "Guidance Found",
	quoteIndicator:   "Quote %d of %d",
	analysis:         "Analysis",
	findAnother:      "Seek Another Passage",
	errAPIKey:        "Gemini API Key is missing or invalid. Please ensure it is correctly configured in your environment.",
	errFetch:         "Could not find guidance. Please try again or check API Key.",
	favoritesTitle:   "My Favorites",
	noFavorites:      "You haven't added any quotes to your favorites yet. Start exploring and mark your cherished passages!",
	journalTitle:     "My Journal",
	noReflections:    "No reflections written yet. Find a quote that resonates and jot down your thoughts.",
	reflectionEditor: "Reflection",
	reflectionHint:   "Write your thoughts and reflections here...",
	exploreTitle:     "Explore Themes",
	qotdTitle:        "Quote of the Day",
	qotdLoading:      "Fetching Quote of the Day...",
	qotdUnavailable:  "Quote of the Day is currently unavailable. Please check back later.",
	shareTitle:       "Share Quote",
	shareCopy:        "Copy to Clipboard",
	shareMail:        "Share via Email",
	shareTweet:       "Share via X (Twitter)",
	copied:           "Copied to clipboard!",
	copyFailed:       "Failed to copy.",
	updateAvailable:  "Update available: v%s",
}

var textJA = uiText{
	title:            "知恵の架け橋",
	homeSubtitle:     "新・人間革命からの指導",
	seekGuidance:     "指導を検索",
	exploreThemes:    "テーマを探す",
	favorites:        "お気に入り",
	journal:          "ジャーナル",
	langSwitch:       "English",
	quit:             "終了",
	inputPlaceholder: "例：勇気、希望...",
	searchHistory:    "検索履歴",
	noHistory:        "まだ検索がありません。",
	processing:       "指導を検索中...",
	guidanceFound:    "指導が見つかりました",
	quoteIndicator:   "%[2]d件中%[1]d件目の引用",
	analysis:         "解説",
	findAnother:      "別の指導を検索",
	errAPIKey:        "Gemini APIキーが見つからないか無効です。環境内で正しく設定されていることを確認してください。",
	errFetch:         "指導が見つかりませんでした。再度試すか、APIキーを確認してください。",
	favoritesTitle:   "お気に入り",
	noFavorites:      "まだお気に入りに引用を追加していません。大切な一節を見つけて登録しましょう！",
	journalTitle:     "マイジャーナル",
	noReflections:    "まだ感想が書かれていません。心に残った引用について、あなたの考えを記録しましょう。",
	reflectionEditor: "感想",
	reflectionHint:   "ここにあなたの考えや感想を書いてください...",
	exploreTitle:     "テーマを探す",
	qotdTitle:        "今日の一節",
	qotdLoading:      "今日の一節を取得中...",
	qotdUnavailable:  "今日の一節は現在利用できません。後でご確認ください。",
	shareTitle:       "引用を共有",
	shareCopy:        "クリップボードにコピー",
	shareMail:        "メールで共有",
	shareTweet:       "X (Twitter) で共有",
	copied:           "クリップボードにコピーしました！",
	copyFailed:       "コピーに失敗しました。",
	updateAvailable:  "アップデートがあります: v%s",
}

func text(lang quote.Language) uiText {
	if lang == quote.LangJA {
		return textJA
	}
	return textEN
}
