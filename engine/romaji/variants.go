package romaji

// baseVariants returns the hand-authored spelling inventory. Each group lists
// mutually interchangeable spellings; every member becomes a key whose
// variants are the whole group, led by the key itself.
func baseVariants() map[string][]string {
	m := map[string][]string{}
	group := func(spellings ...string) {
		for _, key := range spellings {
			m[key] = append(m[key], spellings...)
		}
	}

	// Vowels.
	group("a")
	group("i", "yi")
	group("u", "wu", "whu")
	group("e")
	group("o")

	// K, G.
	group("ka", "ca")
	group("ki")
	group("ku", "cu", "qu")
	group("ke")
	group("ko", "co")
	for _, s := range []string{"ga", "gi", "gu", "ge", "go"} {
		group(s)
	}

	// S, Z.
	group("sa")
	group("si", "shi", "ci")
	group("su")
	group("se", "ce")
	group("so")
	group("za")
	group("zi", "ji")
	group("zu")
	group("ze")
	group("zo")

	// T, D.
	group("ta")
	group("ti", "chi")
	group("tu", "tsu")
	group("te")
	group("to")
	group("da")
	group("di")
	group("du", "dzu")
	group("de")
	group("do")

	// N, M, R, Y, W.
	for _, s := range []string{
		"na", "ni", "nu", "ne", "no",
		"ma", "mi", "mu", "me", "mo",
		"ra", "ri", "ru", "re", "ro",
		"ya", "yu", "yo", "ye",
		"wa", "wo",
	} {
		group(s)
	}
	group("wi", "whi")
	group("we", "whe")
	group("nn", "xn")

	// H, B, P.
	group("ha")
	group("hi")
	group("hu", "fu")
	group("he")
	group("ho")
	for _, s := range []string{
		"ba", "bi", "bu", "be", "bo",
		"pa", "pi", "pu", "pe", "po",
	} {
		group(s)
	}

	// Foreign-sound extensions.
	group("fa", "fwa")
	group("fi", "fwi")
	group("fe", "fwe")
	group("fo", "fwo")
	group("thi")
	group("dhi")
	for _, s := range []string{"va", "vi", "vu", "ve", "vo"} {
		group(s)
	}

	// Palatalized.
	for _, c := range []string{"k", "n", "h", "m", "r", "g", "b", "p"} {
		for _, v := range []string{"a", "u", "o"} {
			group(c + "y" + v)
		}
	}
	group("dya")
	group("dyu")
	group("dyo")
	group("sya", "sha")
	group("syu", "shu")
	group("syo", "sho")
	group("sye", "she")
	group("tya", "cha", "cya")
	group("tyu", "chu", "cyu")
	group("tyo", "cho", "cyo")
	group("tye", "che", "cye")
	group("zya", "ja", "jya")
	group("zyu", "ju", "jyu")
	group("zyo", "jo", "jyo")
	group("zye", "je", "jye")

	// Small letters.
	group("xa", "la")
	group("xi", "li")
	group("xu", "lu")
	group("xe", "le")
	group("xo", "lo")
	group("xya", "lya")
	group("xyu", "lyu")
	group("xyo", "lyo")
	group("xwa", "lwa")
	group("xtu", "ltu", "xtsu", "ltsu")

	// Geminate onsets: a doubled consonant may be typed as small tsu
	// followed by the single consonant.
	for _, c := range []string{"k", "s", "t", "c", "p", "g", "z", "d", "b", "h", "f", "j", "r", "y", "w", "v"} {
		m[c+c] = append(m[c+c], c+c, "xtu"+c, "ltu"+c)
	}

	// Punctuation.
	for _, s := range []string{"-", ",", ".", "!", "?"} {
		group(s)
	}

	return m
}
