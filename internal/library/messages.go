package library

import "github.com/shristy0611/Wisdom-Bridge/internal/quote"

// Notice strings for the few mutations that confirm themselves to the user.

func msgFavoriteAdded(lang quote.Language) string {
	if lang == quote.LangJA {
		return "お気に入りに追加しました！"
	}
	return "Added to favorites!"
}

func msgFavoriteRemoved(lang quote.Language) string {
	if lang == quote.LangJA {
		return "お気に入りから削除しました。"
	}
	return "Removed from favorites."
}

func msgReflectionSaved(lang quote.Language) string {
	if lang == quote.LangJA {
		return "感想を保存しました。"
	}
	return "Reflection saved."
}

func msgReflectionDeleted(lang quote.Language) string {
	if lang == quote.LangJA {
		return "感想を削除しました。"
	}
	return "Reflection deleted."
}

func msgHistoryDeleted(lang quote.Language) string {
	if lang == quote.LangJA {
		return "検索履歴の項目を削除しました。"
	}
	return "History item deleted."
}
