package reading

import (
	"strings"
	"unicode"
)

// syllables maps a katakana rune to its romaji, Kunrei style with the
// usual IME spellings for ヂ, ヅ and ヲ.
var syllables = map[rune]string{
	'ア': "a", 'イ': "i", 'ウ': "u", 'エ': "e", 'オ': "o",
	'カ': "ka", 'キ': "ki", 'ク': "ku", 'ケ': "ke", 'コ': "ko",
	'ガ': "ga", 'ギ': "gi", 'グ': "gu", 'ゲ': "ge", 'ゴ': "go",
	'サ': "sa", 'シ': "si", 'ス': "su", 'セ': "se", 'ソ': "so",
	'ザ': "za", 'ジ': "zi", 'ズ': "zu", 'ゼ': "ze", 'ゾ': "zo",
	'タ': "ta", 'チ': "ti", 'ツ': "tu", 'テ': "te", 'ト': "to",
	'ダ': "da", 'ヂ': "di", 'ヅ': "du", 'デ': "de", 'ド': "do",
	'ナ': "na", 'ニ': "ni", 'ヌ': "nu", 'ネ': "ne", 'ノ': "no",
	'ハ': "ha", 'ヒ': "hi", 'フ': "hu", 'ヘ': "he", 'ホ': "ho",
	'バ': "ba", 'ビ': "bi", 'ブ': "bu", 'ベ': "be", 'ボ': "bo",
	'パ': "pa", 'ピ': "pi", 'プ': "pu", 'ペ': "pe", 'ポ': "po",
	'マ': "ma", 'ミ': "mi", 'ム': "mu", 'メ': "me", 'モ': "mo",
	'ヤ': "ya", 'ユ': "yu", 'ヨ': "yo",
	'ラ': "ra", 'リ': "ri", 'ル': "ru", 'レ': "re", 'ロ': "ro",
	'ワ': "wa", 'ヰ': "i", 'ヱ': "e", 'ヲ': "wo",
	'ン': "nn", 'ヴ': "vu", 'ー': "-",
	'、': ",", '。': ".", '！': "!", '？': "?",
}

var smallY = map[rune]string{'ャ': "ya", 'ュ': "yu", 'ョ': "yo"}

var smallVowel = map[rune]string{'ァ': "a", 'ィ': "i", 'ゥ': "u", 'ェ': "e", 'ォ': "o"}

// toKatakana shifts hiragana into the katakana block.
func toKatakana(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'ぁ' && r <= 'ゖ' {
			return r + 0x60
		}
		return r
	}, s)
}

// KanaToRomaji converts hiragana or katakana to typeable romaji. Small
// ya/yu/yo combine with the preceding syllable, small tsu doubles the
// next consonant, ン becomes "nn" and ー becomes "-". ASCII passes through
// lowercased; anything else is dropped.
func KanaToRomaji(kana string) string {
	var out []string
	geminate := false

	emit := func(s string) {
		if geminate {
			if s != "" && !isVowel(s[0]) && s[0] != 'n' && s[0] != '-' {
				s = s[:1] + s
			} else {
				out = append(out, "xtu")
			}
			geminate = false
		}
		out = append(out, s)
	}

	for _, r := range toKatakana(kana) {
		switch {
		case r == 'ッ':
			if geminate {
				out = append(out, "xtu")
			}
			geminate = true
		case smallY[r] != "":
			if n := len(out); n > 0 && strings.HasSuffix(out[n-1], "i") && len(out[n-1]) > 1 {
				prev := out[n-1]
				out[n-1] = prev[:len(prev)-1] + smallY[r]
			} else {
				emit("x" + smallY[r])
			}
		case smallVowel[r] != "":
			if n := len(out); n > 0 && combineVowel(out[n-1], smallVowel[r]) != "" {
				out[n-1] = combineVowel(out[n-1], smallVowel[r])
			} else {
				emit("x" + smallVowel[r])
			}
		case syllables[r] != "":
			emit(syllables[r])
		case r < unicode.MaxASCII && !unicode.IsSpace(r):
			emit(strings.ToLower(string(r)))
		}
	}
	if geminate {
		out = append(out, "xtu")
	}
	return strings.Join(out, "")
}

// combineVowel folds a small vowel into the syllable before it, or returns
// "" when the pair has no combined spelling.
func combineVowel(prev, v string) string {
	switch {
	case prev == "hu":
		return "f" + v
	case prev == "vu":
		return "v" + v
	case prev == "u" && (v == "i" || v == "e"):
		return "w" + v
	case prev == "te" && v == "i":
		return "thi"
	case prev == "de" && v == "i":
		return "dhi"
	}
	return ""
}

func isVowel(b byte) bool {
	return strings.IndexByte("aiueo", b) >= 0
}
