package vocab

import "time"

// Kind distinguishes single words from idioms.
type Kind string

const (
	KindWord  Kind = "WORD"
	KindIdiom Kind = "IDIOM"
)

// Difficulty tiers. Tier 1 targets a TOEIC 600 score, tier 2 targets 800,
// tier 3 targets 900+.
const (
	DifficultyBasic    = 1
	DifficultyAdvanced = 2
	DifficultyExpert   = 3
)

// Item is a single vocabulary entry. Items are immutable once ingested;
// the generation pipeline reads them and never writes back.
type Item struct {
	ID           int
	Word         string
	Kind         Kind
	Difficulty   int
	Meaning      string
	PartOfSpeech string
	Example      string
	CreatedAt    time.Time
}

// DifficultyLabel returns the Japanese prompt label for a difficulty tier.
func DifficultyLabel(difficulty int) string {
	switch difficulty {
	case DifficultyAdvanced:
		return "上級レベル（TOEIC 800点目標）"
	case DifficultyExpert:
		return "超上級レベル（TOEIC 900点以上）"
	default:
		return "基礎レベル（TOEIC 600点目標）"
	}
}
