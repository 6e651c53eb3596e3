// Package candidates expands a romanization into every equivalent spelling
// by tokenizing it into morae and taking the product of their variants.
package candidates

import "strings"

// maxToken is the longest substring tried against the table.
const maxToken = 3

// MaxCandidates is the most spellings one word may expand to. Words over
// the cap are refused when they enter a bank or pack.
const MaxCandidates = 4096

// Table looks up the accepted spellings for a mora key.
type Table interface {
	Lookup(key string) []string
}

// Token is one mora of a romanization with its accepted spellings.
type Token struct {
	Key      string
	Variants []string
}

// Tokenize splits romanization into morae, left to right, taking the longest
// key (3, then 2, then 1 characters) the table knows at each position.
// A character no key covers becomes a token that only matches itself.
func Tokenize(table Table, romanization string) []Token {
	s := strings.ToLower(romanization)
	var tokens []Token
	for pos := 0; pos < len(s); {
		matched := false
		for n := maxToken; n >= 1; n-- {
			if pos+n > len(s) {
				continue
			}
			key := s[pos : pos+n]
			if v := table.Lookup(key); len(v) > 0 {
				tokens = append(tokens, Token{Key: key, Variants: v})
				pos += n
				matched = true
				break
			}
		}
		if !matched {
			key := s[pos : pos+1]
			tokens = append(tokens, Token{Key: key, Variants: []string{key}})
			pos++
		}
	}
	return tokens
}

// Generate returns every full spelling of romanization. Order is
// deterministic: earlier tokens vary slowest, and within a token variants
// keep table order, so the first candidate is built from each key's own
// spelling. Callers check Fits first; Generate builds the whole product.
func Generate(table Table, romanization string) []string {
	acc := []string{""}
	for _, tok := range Tokenize(table, romanization) {
		if len(tok.Variants) == 1 {
			for i := range acc {
				acc[i] += tok.Variants[0]
			}
			continue
		}
		next := make([]string, 0, len(acc)*len(tok.Variants))
		for _, prefix := range acc {
			for _, v := range tok.Variants {
				next = append(next, prefix+v)
			}
		}
		acc = next
	}
	return acc
}

// Count returns how many candidates Generate would produce, saturating at
// MaxCandidates+1.
func Count(table Table, romanization string) int {
	n := 1
	for _, tok := range Tokenize(table, romanization) {
		n *= len(tok.Variants)
		if n > MaxCandidates {
			return MaxCandidates + 1
		}
	}
	return n
}

// Fits reports whether romanization expands to at most MaxCandidates
// spellings.
func Fits(table Table, romanization string) bool {
	return Count(table, romanization) <= MaxCandidates
}
