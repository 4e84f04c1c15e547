package hebrew

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskToPrefix(t *testing.T) {
	cases := []struct {
		name string
		mask Mask
		want PrefixType
	}{
		{"noun", DNoun | DMasculine | DSingular, PSAll},
		{"noun with suffix", DNoun | DOFeminine | DOThird | DOSingular, PSNonDef},
		{"construct noun", DNoun | DOsmichut, PSNonDef},
		{"proper noun", DNoun | DSpecNoun, PSNonDef},
		{"adjective", DAdj | DFeminine, PSAll},
		{"construct adjective", DAdj | DOsmichut, PSNonDef},
		{"past verb", DVerb | DPast | DThird, PSVerb},
		{"future verb", DVerb | DFuture, PSVerb},
		{"imperative verb", DVerb | DImperative, PSImper},
		{"present verb", DVerb | DPresent, PSAll},
		{"present verb with suffix", DVerb | DPresent | DOFirst | DOPlural, PSNonDef},
		{"infinitive", DVerb | DInfinitive, PSL},
		{"infinitive with suffix", DVerb | DInfinitive | DOThird, PSL},
		{"b infinitive", DVerb | DBInfinitive, PSB},
		{"other", 0, PSAll},
		{"acronym", DAcronym, PSAll},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, MaskToPrefix(c.mask), c.name)
	}
}

func TestMaskAccessors(t *testing.T) {
	m := DVerb | DPast | DThird | DPlural | DOMasculine | DOFirst
	assert.Equal(t, DVerb, m.Type())
	assert.Equal(t, DPast, m.Tense())
	assert.True(t, m.IsVerb())
	assert.True(t, m.HasSuffix())
	assert.False(t, (DNoun | DPlural).HasSuffix())
	assert.False(t, DAdj.IsVerb())
}

func TestMaskString(t *testing.T) {
	assert.Equal(t, "Noun,Masculine,Singular", (DNoun | DMasculine | DSingular).String())
	assert.Equal(t, "Verb,3rd,Plural,Past", (DVerb | DThird | DPlural | DPast).String())
	assert.Equal(t, "Noun,Construct", (DNoun | DOsmichut).String())
	assert.Equal(t, "x,Acronym", DAcronym.String())
	assert.Equal(t, "Noun,Pronominal/Feminine/3rd/Singular", (DNoun | DOFeminine | DOThird | DOSingular).String())
	assert.Equal(t, "ע,ז,יחיד", (DNoun | DMasculine | DSingular).HebrewString())
}
