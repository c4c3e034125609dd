package guidance

import (
	"fmt"

	"github.com/shristy0611/Wisdom-Bridge/internal/quote"
)

const (
	systemGuidanceEN = "You are an expert on Daisaku Ikeda's 'The New Human Revolution'. Your purpose is to provide up to 5 inspirational and distinct quotes, their highly accurate citations (volume, chapter, etc., as specific as possible), and a brief analysis for each quote, all highly relevant to the user's theme. The analysis should be written in an empathetic, friendly, and caring tone, reflecting the spirit of Daisaku Ikeda, but *without* impersonating him. The quotes should be unique and complementary if possible."

	systemGuidanceJA = "あなたは池田大作著「新・人間革命」の専門家です。あなたの使命は、ユーザーのテーマに深く関連する、「新・人間革命」の日本語原文から直接引用した、最大5つの感動的な原文ままの引用、それぞれの極めて正確な出典（巻、章、節など、可能な限り具体的に）、そして各引用の簡潔な分析を提供することです。この分析は、池田大作先生の精神を反映した、共感的で、友好的で、思いやりのあるトーンで書かれるべきですが、先生になりすますことは避けてください。引用はユニークで、互いに補完的であるべきです。"

	systemQotdEN = "You are an expert on Daisaku Ikeda's 'The New Human Revolution'. Your purpose is to provide one universally inspirational quote from the original text, its highly accurate citation (volume, chapter, etc., as specific as possible), and a brief analysis. The analysis should be written in an empathetic, friendly, and caring tone, reflecting the spirit of Daisaku Ikeda, but *without* impersonating him."

	systemQotdJA = "あなたは池田大作著「新・人間革命」の専門家です。あなたの使命は、「新・人間革命」の日本語原文から、広く感動を与える普遍的な引用を一つだけ選び、その極めて正確な出典（巻、章、節など、可能な限り具体的に）と簡潔な分析を提供することです。この分析は、池田大作先生の精神を反映した、共感的で、友好的で、思いやりのあるトーンで書かれるべきですが、先生になりすますことは避けてください。"
)

const guidancePromptEN = `User's theme: %q. Provide up to 5 inspirational quotes from "The New Human Revolution" that are highly relevant to this theme. For each quote, include its highly accurate citation (volume, chapter, page number if possible, etc., as specific as possible), and a brief analysis of its significance. Please respond with a JSON array, where each element is an object representing one quote, in the following format:
` + "```json" + `
[
  {
    "quote": "The quote text 1",
    "citation": "Citation 1 (e.g., Vol. 1, 'Sunrise' Chapter, p.XX)",
    "analysis": "Analysis text 1"
  }
]
` + "```" + `
If fewer than 5 perfectly relevant quotes are found, return only those that are found. Extreme relevance and citation accuracy (including page numbers where possible) are paramount.`

const guidancePromptJA = `ユーザーのテーマ：「%s」。このテーマに深く関連する「新・人間革命」の日本語原文から直接引用した、最大5つの感動的な原文ままの引用を、それぞれの極めて正確な出典（例：第1巻「旭日」の章 P.XX）と簡潔な解説と共に提供してください。応答は以下のJSON形式の配列でお願いします。各要素が1つの引用に対応します：
` + "```json" + `
[
  {
    "quote": "引用文1（日本語原文のまま）",
    "citation": "出典1（例：第X巻「YYY」の章 P.ZZZ）",
    "analysis": "解説文1"
  }
]
` + "```" + `
もしテーマに完全に合致する引用が5つ未満の場合は、見つかった数だけを返してください。引用の原文忠実性、極めて高い関連性、そして出典の正確性が最重要です。出典には可能な限りページ番号を含めてください。`

const qotdPromptEN = `Provide one universally inspirational quote from "The New Human Revolution". Include its highly accurate citation (e.g., Vol. 1, 'Sunrise' Chapter, p.XX) and a brief analysis of its significance. Please respond with a single JSON object in the following format:
` + "```json" + `
{
  "quote": "The quote text",
  "citation": "Citation (e.g., Vol. 1, 'Sunrise' Chapter, p.XX)",
  "analysis": "Analysis text"
}
` + "```" + `
Citation accuracy is paramount.`

const qotdPromptJA = `「新・人間革命」の日本語原文から、広く感動を与える名言を一つだけ提供してください。出典（例：第1巻「旭日」の章 P.XX）と、その言葉の意義に関する簡潔な解説もお願いします。応答は以下のJSON形式の単一オブジェクトでお願いします：
` + "```json" + `
{
  "quote": "引用文（日本語原文のまま）",
  "citation": "出典（例：第X巻「YYY」の章 P.ZZZ）",
  "analysis": "解説文"
}
` + "```" + `
出典の正確性が非常に重要です。`

func guidanceSystem(lang quote.Language) string {
	if lang == quote.LangJA {
		return systemGuidanceJA
	}
	return systemGuidanceEN
}

func guidancePrompt(theme string, lang quote.Language) string {
	if lang == quote.LangJA {
		return fmt.Sprintf(guidancePromptJA, theme)
	}
	return fmt.Sprintf(guidancePromptEN, theme)
}

func qotdSystem(lang quote.Language) string {
	if lang == quote.LangJA {
		return systemQotdJA
	}
	return systemQotdEN
}

func qotdPrompt(lang quote.Language) string {
	if lang == quote.LangJA {
		return qotdPromptJA
	}
	return qotdPromptEN
}
