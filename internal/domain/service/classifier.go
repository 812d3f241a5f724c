package service

import (
	"strconv"
	"strings"
	"unicode"
)

// Result represents the categorized output of one classification pass
type Result struct {
	OddNumbers        []string `json:"odd_numbers"`
	EvenNumbers       []string `json:"even_numbers"`
	Alphabets         []string `json:"alphabets"`
	SpecialCharacters []string `json:"special_characters"`
	Sum               string   `json:"sum"`
	ConcatString      string   `json:"concat_string"`
}

// Classifier defines the interface for token classification
type Classifier interface {
	// Classify categorizes every token of an ordered input sequence
	Classify(tokens []string) *Result
}

type tokenClassifier struct{}

// NewTokenClassifier creates the default classifier
func NewTokenClassifier() Classifier {
	return &tokenClassifier{}
}

// Classify walks the tokens once, in input order. A token made of digits is
// numeric; a token made of letters goes to Alphabets uppercased; a token
// mixing letters, digits and other runes is split into its letter run, digit
// run and leftover run; anything else lands in SpecialCharacters verbatim.
// Numeric tokens feed the running sum and are partitioned by parity.
// ConcatString is every letter seen across all tokens, reversed, with case
// alternating from uppercase at position 0.
func (tokenClassifier) Classify(tokens []string) *Result {
	res := &Result{
		OddNumbers:        []string{},
		EvenNumbers:       []string{},
		Alphabets:         []string{},
		SpecialCharacters: []string{},
	}

	var numeric []string
	var letters []rune

	for _, raw := range tokens {
		tok := strings.TrimSpace(raw)
		if tok == "" {
			continue
		}

		for _, r := range tok {
			if unicode.IsLetter(r) {
				letters = append(letters, r)
			}
		}

		switch {
		case isDigits(tok):
			numeric = append(numeric, tok)
		case isLetters(tok):
			res.Alphabets = append(res.Alphabets, strings.ToUpper(tok))
		default:
			var alpha, digits, special []rune
			for _, r := range tok {
				switch {
				case unicode.IsLetter(r):
					alpha = append(alpha, unicode.ToUpper(r))
				case unicode.IsDigit(r):
					digits = append(digits, r)
				default:
					special = append(special, r)
				}
			}
			if len(alpha) == 0 && len(digits) == 0 {
				res.SpecialCharacters = append(res.SpecialCharacters, tok)
				continue
			}
			if len(alpha) > 0 {
				res.Alphabets = append(res.Alphabets, string(alpha))
			}
			if len(digits) > 0 {
				numeric = append(numeric, string(digits))
			}
			if len(special) > 0 {
				res.SpecialCharacters = append(res.SpecialCharacters, string(special))
			}
		}
	}

	var sum int64
	for _, tok := range numeric {
		n, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			// digit runs that do not fit int64 (or use non-ASCII digits)
			// are kept verbatim instead of dropped
			res.SpecialCharacters = append(res.SpecialCharacters, tok)
			continue
		}
		sum += n
		if n%2 == 0 {
			res.EvenNumbers = append(res.EvenNumbers, tok)
		} else {
			res.OddNumbers = append(res.OddNumbers, tok)
		}
	}
	res.Sum = strconv.FormatInt(sum, 10)
	res.ConcatString = alternateCase(reverseRunes(letters))

	return res
}

func isDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func isLetters(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func reverseRunes(rs []rune) []rune {
	out := make([]rune, len(rs))
	for i, r := range rs {
		out[len(rs)-1-i] = r
	}
	return out
}

// alternateCase uppercases runes at even positions and lowercases the rest
func alternateCase(rs []rune) string {
	var b strings.Builder
	b.Grow(len(rs))
	for i, r := range rs {
		if i%2 == 0 {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
