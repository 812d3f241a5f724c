package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_MixedTokens(t *testing.T) {
	c := NewTokenClassifier()

	res := c.Classify([]string{"a", "1", "334", "4", "R", "2", "b"})

	assert.Equal(t, []string{"1"}, res.OddNumbers)
	assert.Equal(t, []string{"334", "4", "2"}, res.EvenNumbers)
	assert.Equal(t, []string{"A", "R", "B"}, res.Alphabets)
	assert.Equal(t, []string{}, res.SpecialCharacters)
	assert.Equal(t, "341", res.Sum)
	assert.Equal(t, "BrA", res.ConcatString)
}

func TestClassify_OnlySpecialCharacters(t *testing.T) {
	c := NewTokenClassifier()

	res := c.Classify([]string{"*", "+"})

	assert.Equal(t, []string{}, res.OddNumbers)
	assert.Equal(t, []string{}, res.EvenNumbers)
	assert.Equal(t, []string{}, res.Alphabets)
	assert.Equal(t, []string{"*", "+"}, res.SpecialCharacters)
	assert.Equal(t, "0", res.Sum)
	assert.Equal(t, "", res.ConcatString)
}

func TestClassify_OddEvenPartition(t *testing.T) {
	c := NewTokenClassifier()

	res := c.Classify([]string{"2", "a", "y", "4", "&", "-", "*", "5", "92", "b"})

	assert.Equal(t, []string{"5"}, res.OddNumbers)
	assert.Equal(t, []string{"2", "4", "92"}, res.EvenNumbers)
	assert.Equal(t, []string{"A", "Y", "B"}, res.Alphabets)
	assert.Equal(t, []string{"&", "-", "*"}, res.SpecialCharacters)
	assert.Equal(t, "103", res.Sum)
	assert.Equal(t, "ByA", res.ConcatString)
}

func TestClassify_MultiCharacterAlphaTokens(t *testing.T) {
	c := NewTokenClassifier()

	res := c.Classify([]string{"hello", "WORLD"})

	assert.Equal(t, []string{"HELLO", "WORLD"}, res.Alphabets)
	assert.Equal(t, "0", res.Sum)
	// letters h,e,l,l,o,W,O,R,L,D reversed then alternated
	assert.Equal(t, "DlRoWoLlEh", res.ConcatString)
}

func TestClassify_SplitsMixedToken(t *testing.T) {
	c := NewTokenClassifier()

	res := c.Classify([]string{"ab12!?"})

	assert.Equal(t, []string{"AB"}, res.Alphabets)
	assert.Equal(t, []string{"12"}, res.EvenNumbers)
	assert.Equal(t, []string{"!?"}, res.SpecialCharacters)
	assert.Equal(t, "12", res.Sum)
	assert.Equal(t, "Ba", res.ConcatString)
}

func TestClassify_NegativeNumberIsMixed(t *testing.T) {
	c := NewTokenClassifier()

	// the minus sign is not a digit, so "-5" splits into "5" and "-"
	res := c.Classify([]string{"-5"})

	assert.Equal(t, []string{"5"}, res.OddNumbers)
	assert.Equal(t, []string{"-"}, res.SpecialCharacters)
	assert.Equal(t, "5", res.Sum)
}

func TestClassify_SkipsEmptyAndWhitespaceTokens(t *testing.T) {
	c := NewTokenClassifier()

	res := c.Classify([]string{"", "  ", " 7 "})

	assert.Equal(t, []string{"7"}, res.OddNumbers)
	assert.Equal(t, "7", res.Sum)
	assert.Equal(t, []string{}, res.SpecialCharacters)
}

func TestClassify_OverflowingDigitRun(t *testing.T) {
	c := NewTokenClassifier()

	huge := "99999999999999999999999999"
	res := c.Classify([]string{huge, "3"})

	assert.Equal(t, []string{"3"}, res.OddNumbers)
	assert.Equal(t, []string{}, res.EvenNumbers)
	assert.Equal(t, []string{huge}, res.SpecialCharacters)
	assert.Equal(t, "3", res.Sum)
}

func TestClassify_EmptyInput(t *testing.T) {
	c := NewTokenClassifier()

	res := c.Classify(nil)

	assert.Equal(t, []string{}, res.OddNumbers)
	assert.Equal(t, []string{}, res.EvenNumbers)
	assert.Equal(t, []string{}, res.Alphabets)
	assert.Equal(t, []string{}, res.SpecialCharacters)
	assert.Equal(t, "0", res.Sum)
	assert.Equal(t, "", res.ConcatString)
}

func TestClassify_Deterministic(t *testing.T) {
	c := NewTokenClassifier()
	in := []string{"a", "1", "334", "4", "R", "2", "b"}

	first := c.Classify(in)
	second := c.Classify(in)

	assert.Equal(t, first, second)
}

func TestAlternateCase(t *testing.T) {
	assert.Equal(t, "", alternateCase(nil))
	assert.Equal(t, "A", alternateCase([]rune("a")))
	assert.Equal(t, "AbCd", alternateCase([]rune("abcd")))
	assert.Equal(t, "AbCd", alternateCase([]rune("ABCD")))
}
