package codec

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radj307/caco-alch-potion-builder/internal/alchemy"
)

func wheat(t *testing.T) alchemy.Ingredient {
	t.Helper()
	ingr, err := alchemy.NewIngredient("Wheat", []alchemy.Effect{
		{Name: "Restore Health", Magnitude: 5, Duration: 0, Keywords: []alchemy.Keyword{alchemy.KeywordBeneficial}},
		{Name: "Fortify Health", Magnitude: 9, Duration: 300},
		{Name: "Damage Stamina Regen", Magnitude: 100, Duration: 5, Keywords: []alchemy.Keyword{alchemy.KeywordHarmful, alchemy.KeywordDurationBased}},
		{Name: "Lingering Damage Magicka", Magnitude: 2, Duration: 10},
	})
	require.NoError(t, err)
	return ingr
}

func TestWrite_Shape(t *testing.T) {
	ingr, err := alchemy.NewIngredient("Garlic", []alchemy.Effect{
		{Name: "Resist Poison", Magnitude: 0.5, Duration: 60},
		{Name: "Fortify Stamina", Magnitude: 1, Duration: 300},
		{Name: "Regenerate Magicka", Magnitude: 0.1, Duration: 300},
		{Name: "Regenerate Health", Magnitude: 0.1, Duration: 300, Keywords: []alchemy.Keyword{alchemy.KeywordBeneficial}},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, []alchemy.Ingredient{ingr}))

	want := "Garlic\n{\n" +
		"\tResist Poison\n\t{\n\t\tmagnitude = 0.5\n\t\tduration = 60\n\t}\n" +
		"\tFortify Stamina\n\t{\n\t\tmagnitude = 1\n\t\tduration = 300\n\t}\n" +
		"\tRegenerate Magicka\n\t{\n\t\tmagnitude = 0.1\n\t\tduration = 300\n\t}\n" +
		"\tRegenerate Health\n\t{\n\t\tmagnitude = 0.1\n\t\tduration = 300\n\t\tMagicAlchBeneficial\n\t}\n" +
		"}\n"
	assert.Equal(t, want, buf.String())
}

func TestRoundTrip(t *testing.T) {
	in := []alchemy.Ingredient{wheat(t)}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, in))

	out, err := Parse(&buf)
	require.NoError(t, err)
	if diff := cmp.Diff(in, out); diff != "" {
		t.Fatalf("round trip changed the catalog (-in +out):\n%s", diff)
	}
}

func TestParse_Lenient(t *testing.T) {
	// Blank lines, CRLF endings, and space indentation are all tolerated.
	doc := "\r\nWheat\r\n{\r\n" +
		"  Restore Health\r\n  {\r\n    magnitude = 5\r\n    duration = 0\r\n  }\r\n" +
		"\tFortify Health\r\n\t{\r\n\t\tmagnitude = 9\r\n\t\tduration = 300\r\n\t}\r\n" +
		"\tDamage Stamina Regen\r\n\t{\r\n\t\tmagnitude = 100\r\n\t\tduration = 5\r\n\t}\r\n" +
		"\tLingering Damage Magicka\r\n\t{\r\n\t\tmagnitude = 2\r\n\t\tduration = 10\r\n\t}\r\n" +
		"}\r\n\r\n"

	out, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Wheat", out[0].Name)
	assert.Equal(t, float64(9), out[0].Effects[1].Magnitude)
	assert.Equal(t, uint(300), out[0].Effects[1].Duration)
}

func TestParse_KeepsDuplicates(t *testing.T) {
	// Dedup policy belongs to the registry, not the parser.
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, []alchemy.Ingredient{wheat(t), wheat(t)}))

	out, err := Parse(&buf)
	require.NoError(t, err)
	assert.Len(t, out, 2)

	reg, dupes := alchemy.NewRegistry(out)
	assert.Equal(t, 1, reg.Len())
	assert.Equal(t, 1, dupes)
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"missing open brace", "Wheat\nRestore Health\n", "expected '{'"},
		{"unterminated ingredient", "Wheat\n{\n", "unterminated block"},
		{"bad magnitude", "Wheat\n{\n\tFx\n\t{\n\t\tmagnitude = lots\n\t\tduration = 0\n\t}\n}\n", "invalid magnitude"},
		{"negative magnitude", "Wheat\n{\n\tFx\n\t{\n\t\tmagnitude = -3\n\t\tduration = 0\n\t}\n}\n", "invalid magnitude"},
		{"bad duration", "Wheat\n{\n\tFx\n\t{\n\t\tmagnitude = 1\n\t\tduration = -1\n\t}\n}\n", "invalid duration"},
		{"wrong effect count", "Wheat\n{\n\tFx\n\t{\n\t\tmagnitude = 1\n\t\tduration = 0\n\t}\n}\n", "effects"},
		{"stray brace", "{\n", "expected ingredient name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
