package param

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidahmann/paramdump/core/jcs"
	schemaparam "github.com/davidahmann/paramdump/core/schema/v1/param"
	"github.com/davidahmann/paramdump/internal/scenarios"
)

func TestStructMarshalMatchesEncode(t *testing.T) {
	for name, descriptor := range map[string]schemaparam.Descriptor{
		"full":    scenarios.FullDescriptor(),
		"minimal": scenarios.MinimalDescriptor(),
	} {
		t.Run(name, func(t *testing.T) {
			direct, err := json.Marshal(descriptor)
			require.NoError(t, err)
			canonical, err := MarshalCanonical(descriptor)
			require.NoError(t, err)

			equal, err := jcs.Equal(direct, canonical)
			require.NoError(t, err)
			assert.True(t, equal, "json.Marshal=%s\nEncode=%s", direct, canonical)
		})
	}
}

func TestStructMarshalInlinesSentinels(t *testing.T) {
	ageLevel, err := json.Marshal(schemaparam.AgeLevel{CountryRatings: map[string]int{"US": 7}, DefaultRating: 3})
	require.NoError(t, err)
	assert.JSONEq(t, `{"US": 7, "default": 3}`, string(ageLevel))

	localized, err := json.Marshal(schemaparam.LocalizedParameters{
		Languages:       map[string]schemaparam.LanguageEntry{"en": {TitleName: "Game"}},
		DefaultLanguage: "en",
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"en": {"titleName": "Game"}, "defaultLanguage": "en"}`, string(localized))
}

func TestStructUnmarshalMatchesParse(t *testing.T) {
	parsed, err := Parse([]byte(scenarios.FullParamJSON))
	require.NoError(t, err)

	var direct schemaparam.Descriptor
	require.NoError(t, json.Unmarshal([]byte(scenarios.FullParamJSON), &direct))
	if diff := cmp.Diff(parsed, direct, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("json.Unmarshal differs from Parse (-parse +unmarshal):\n%s", diff)
	}
}

func TestStructUnmarshalRequiresSentinels(t *testing.T) {
	var ageLevel schemaparam.AgeLevel
	assert.ErrorContains(t, json.Unmarshal([]byte(`{"US": 7}`), &ageLevel), `missing "default"`)

	var localized schemaparam.LocalizedParameters
	assert.ErrorContains(t, json.Unmarshal([]byte(`{"en": {"titleName": "Game"}}`), &localized), `missing "defaultLanguage"`)
}
