package quizgen

import (
	"fmt"
	"strings"

	"github.com/example/vocaquiz/internal/vocab"
)

const systemPrompt = `あなたはTOEIC問題作成の専門家です。指定された単語またはイディオムを使った4択問題を1問作成してください。

問題作成の要件:
- TOEIC Part 5（短文穴埋め問題）の形式。空欄は _____ で表現する。
- ビジネスシーンで使用される自然な英文（会議、メール、報告書、プレゼンテーション、契約、交渉、オフィス業務など）。
- 文章構成を多様化する: 主語は人名・会社名・部署名・一般名詞・代名詞をバランスよく使い、能動態と受動態、肯定文と否定文、様々な時制を織り交ぜる。空欄の位置も文頭・文中・文末で変化させる。「人名 + 動詞 + 目的語」の繰り返しは避ける。
- 正解の選択肢には対象の単語をそのまま含める。
- 不正解の選択肢3つは、意味が似ている単語、同じ文脈で使われやすい単語、綴りや発音が似ている単語から選び、文脈を正しく理解しないと間違えやすいものにする。
- 全ての選択肢は同じ品詞で統一する。
- 解説の第1行は「正解は (X) 『単語（意味）』です。」という形式にする。Xは選択肢のアルファベットで、correctIndex = 0 → (A)、1 → (B)、2 → (C)、3 → (D) と対応する。空行を挟んで詳細な解説を続ける。
- correctIndexには、choices配列の中で対象の単語が含まれる選択肢の正確な位置（0-3）を設定する。

出力はJSONのみとし、他の説明文は含めないでください:
{
  "questionText": "問題文（英語。空欄は _____ で表現）",
  "questionTranslation": "問題文の日本語訳全文",
  "choices": ["選択肢1", "選択肢2", "選択肢3", "選択肢4"],
  "correctIndex": 0,
  "explanation": "正解は (A) 『単語（意味）』です。\n\n詳細な解説文..."
}`

// buildUserMessage constructs the per-item user message.
func buildUserMessage(item vocab.Item) string {
	kindLabel := "単語"
	if item.Kind == vocab.KindIdiom {
		kindLabel = "イディオム"
	}

	var b strings.Builder

	fmt.Fprintf(&b, "対象%s: %s\n", kindLabel, item.Word)
	fmt.Fprintf(&b, "意味: %s\n", item.Meaning)
	if item.PartOfSpeech != "" {
		fmt.Fprintf(&b, "品詞: %s\n", item.PartOfSpeech)
	}
	fmt.Fprintf(&b, "難易度: %s\n", vocab.DifficultyLabel(item.Difficulty))

	return b.String()
}
