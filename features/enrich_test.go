package features

import (
	"testing"

	"github.com/stretchr/testify/require"
	"text2label.com/fex/gazetteer"
	"text2label.com/fex/types"
)

func testIndex() *gazetteer.Index {
	return gazetteer.New(
		[]types.GazetteerCategory{
			{Name: "days", File: "days.txt", Flag: "gaz-d"},
			{Name: "months", File: "months.txt", Flag: "gaz-m"},
		},
		map[string][]string{
			"days":   {"Monday", "सोमवार"},
			"months": {"January"},
		},
	)
}

func enrichOne(t *testing.T, w string, pos string) *types.Token {
	t.Helper()
	token := types.NewToken("O", w, pos, "I-NP")
	NewEnricher(testIndex()).Enrich(token)
	return token
}

func TestEnrichShapeAttrs(t *testing.T) {
	token := enrichOne(t, "USD100", "NN")
	require.Equal(t, "usd100", token.Get(AttrLower))
	require.Equal(t, "UUUDDD", token.Get(AttrShape))
	require.Equal(t, "UD", token.Get(AttrShapeDegen))
	require.Equal(t, "no", token.Get(Attr2Digit))
	require.Equal(t, "no", token.Get(Attr4Digit))
	require.Equal(t, "no", token.Get(AttrAllDigit))
	require.Equal(t, "yes", token.Get(AttrHasDigit))
}

func TestEnrichAffixes(t *testing.T) {
	token := enrichOne(t, "Monday", "NNP")
	require.Equal(t, "M", token.Get("p1"))
	require.Equal(t, "Mo", token.Get("p2"))
	require.Equal(t, "Mon", token.Get("p3"))
	require.Equal(t, "Mond", token.Get("p4"))
	require.Equal(t, "y", token.Get("s1"))
	require.Equal(t, "ay", token.Get("s2"))
	require.Equal(t, "day", token.Get("s3"))
	require.Equal(t, "nday", token.Get("s4"))

	short := enrichOne(t, "ab", "NN")
	require.Equal(t, "ab", short.Get("p2"))
	require.Equal(t, "", short.Get("p3"))
	require.Equal(t, "", short.Get("p4"))
	require.Equal(t, "ab", short.Get("s2"))
	require.Equal(t, "", short.Get("s3"))
}

func TestEnrichAffixesCountRunes(t *testing.T) {
	token := enrichOne(t, "जी", "NN")
	require.Equal(t, "ज", token.Get("p1"))
	require.Equal(t, "जी", token.Get("p2"))
	require.Equal(t, "", token.Get("p3"))
	require.Equal(t, "ी", token.Get("s1"))
}

func TestEnrichDigitAttrs(t *testing.T) {
	require.Equal(t, "yes", enrichOne(t, "12", "QC").Get(Attr2Digit))
	require.Equal(t, "yes", enrichOne(t, "1234", "QC").Get(Attr4Digit))
	require.Equal(t, "yes", enrichOne(t, "12", "QC").Get(AttrAllDigit))
	require.Equal(t, "no", enrichOne(t, "", "").Get(AttrAllDigit))

	token := enrichOne(t, "12-34", "QC")
	require.Equal(t, "yes", token.Get(AttrDigitDash))
	require.Equal(t, "no", token.Get(AttrDigitSlash))
	require.Equal(t, "no", token.Get(AttrDigitComma))
	require.Equal(t, "no", token.Get(AttrDigitDot))

	// digits alone or separators alone do not count
	require.Equal(t, "no", enrichOne(t, "1234", "QC").Get(AttrDigitDash))
	require.Equal(t, "no", enrichOne(t, "--", "SYM").Get(AttrDigitDash))
	require.Equal(t, "yes", enrichOne(t, "1/2", "QC").Get(AttrDigitSlash))
	require.Equal(t, "yes", enrichOne(t, "1,000", "QC").Get(AttrDigitComma))
	require.Equal(t, "yes", enrichOne(t, "3.14", "QC").Get(AttrDigitDot))
}

func TestEnrichSymbolAttrs(t *testing.T) {
	require.Equal(t, "yes", enrichOne(t, "'s", "POS").Get(AttrPossessive))
	require.Equal(t, "no", enrichOne(t, "ab", "NN").Get(AttrPossessive))
	require.Equal(t, "no", enrichOne(t, "s'", "NN").Get(AttrPossessive))

	require.Equal(t, "yes", enrichOne(t, "--", "SYM").Get(AttrAllOther))
	require.Equal(t, "yes", enrichOne(t, "", "").Get(AttrAllOther))
	require.Equal(t, "no", enrichOne(t, "a-", "NN").Get(AttrAllOther))

	require.Equal(t, "no", enrichOne(t, "ab", "NN").Get(AttrHasSymbol))
	require.Equal(t, "yes", enrichOne(t, "a-", "NN").Get(AttrHasSymbol))
	require.Equal(t, "no", enrichOne(t, "", "").Get(AttrHasSymbol))
}

func TestEnrichSubstringAttrs(t *testing.T) {
	token := enrichOne(t, "$5:rs&co", "NN")
	require.Equal(t, "yes", token.Get(AttrDollar))
	require.Equal(t, "yes", token.Get(AttrRupee))
	require.Equal(t, "yes", token.Get(AttrColon))
	require.Equal(t, "yes", token.Get(AttrAmpersand))

	// substring tests are case-sensitive
	require.Equal(t, "no", enrichOne(t, "Rs100", "NN").Get(AttrRupee))

	require.Equal(t, "yes", enrichOne(t, "रामजी", "NNP").Get(AttrJi))
	require.Equal(t, "yes", enrichOne(t, "बजे", "NN").Get(AttrBaje))
	require.Equal(t, "no", enrichOne(t, "राम", "NNP").Get(AttrJi))
}

func TestEnrichPOSAttrs(t *testing.T) {
	token := enrichOne(t, "राम", "NNP")
	require.Equal(t, "yes", token.Get(AttrNNP))
	require.Equal(t, "no", token.Get(AttrNNC))
	require.Equal(t, "no", token.Get(AttrNNPC))
	require.Equal(t, "no", token.Get(AttrQC))

	token = enrichOne(t, "राम", "NNC")
	require.Equal(t, "yes", token.Get(AttrNNC))
	// nnpc tracks the NNC test, so it fires here too
	require.Equal(t, "yes", token.Get(AttrNNPC))

	// "NNPC" does not contain "NNC": nnc and nnpc both stay off
	token = enrichOne(t, "राम", "NNPC")
	require.Equal(t, "yes", token.Get(AttrNNP))
	require.Equal(t, "no", token.Get(AttrNNC))
	require.Equal(t, "no", token.Get(AttrNNPC))

	require.Equal(t, "yes", enrichOne(t, "12", "QC").Get(AttrQC))
	require.Equal(t, "no", enrichOne(t, "", "").Get(AttrNNP))
}

func TestEnrichGazetteerFlags(t *testing.T) {
	require.Equal(t, "1", enrichOne(t, "Monday", "NNP").Get("gaz-d"))
	require.Equal(t, "0", enrichOne(t, "Monday", "NNP").Get("gaz-m"))
	require.Equal(t, "1", enrichOne(t, "सोमवार", "NNP").Get("gaz-d"))
	require.Equal(t, "1", enrichOne(t, "January", "NNP").Get("gaz-m"))

	// exact match only: no case folding, no substring
	require.Equal(t, "0", enrichOne(t, "monday", "NNP").Get("gaz-d"))
	require.Equal(t, "0", enrichOne(t, "Mondays", "NNP").Get("gaz-d"))
}

func TestEnrichGazetteerFlagCollision(t *testing.T) {
	idx := gazetteer.New(
		[]types.GazetteerCategory{
			{Name: "months", File: "months.txt", Flag: "gaz-m"},
			{Name: "money", File: "money.txt", Flag: "gaz-m"},
		},
		map[string][]string{
			"months": {"January"},
			"money":  {"rupee"},
		},
	)
	enricher := NewEnricher(idx)

	// the later category owns the shared key
	token := types.NewToken("O", "January", "NNP", "")
	enricher.Enrich(token)
	require.Equal(t, "0", token.Get("gaz-m"))

	token = types.NewToken("O", "rupee", "NN", "")
	enricher.Enrich(token)
	require.Equal(t, "1", token.Get("gaz-m"))
}
