package param

import (
	"encoding/json"
	"fmt"
	"maps"
)

// MarshalJSON writes the ratings with DefaultRating inlined under
// DefaultRatingKey. A country named DefaultRatingKey is replaced.
func (a AgeLevel) MarshalJSON() ([]byte, error) {
	out := make(map[string]int, len(a.CountryRatings)+1)
	maps.Copy(out, a.CountryRatings)
	out[DefaultRatingKey] = a.DefaultRating
	return json.Marshal(out)
}

func (a *AgeLevel) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	rawDefault, ok := raw[DefaultRatingKey]
	if !ok {
		return fmt.Errorf("ageLevel: missing %q", DefaultRatingKey)
	}
	decoded := AgeLevel{CountryRatings: make(map[string]int, len(raw)-1)}
	if err := json.Unmarshal(rawDefault, &decoded.DefaultRating); err != nil {
		return fmt.Errorf("ageLevel.%s: %w", DefaultRatingKey, err)
	}
	delete(raw, DefaultRatingKey)
	for country, value := range raw {
		var rating int
		if err := json.Unmarshal(value, &rating); err != nil {
			return fmt.Errorf("ageLevel.%s: %w", country, err)
		}
		decoded.CountryRatings[country] = rating
	}
	*a = decoded
	return nil
}

// MarshalJSON writes the languages with DefaultLanguage inlined under
// DefaultLanguageKey. A language named DefaultLanguageKey is replaced.
func (l LocalizedParameters) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(l.Languages)+1)
	for language, entry := range l.Languages {
		out[language] = entry
	}
	out[DefaultLanguageKey] = l.DefaultLanguage
	return json.Marshal(out)
}

func (l *LocalizedParameters) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	rawDefault, ok := raw[DefaultLanguageKey]
	if !ok {
		return fmt.Errorf("localizedParameters: missing %q", DefaultLanguageKey)
	}
	decoded := LocalizedParameters{Languages: make(map[string]LanguageEntry, len(raw)-1)}
	if err := json.Unmarshal(rawDefault, &decoded.DefaultLanguage); err != nil {
		return fmt.Errorf("localizedParameters.%s: %w", DefaultLanguageKey, err)
	}
	delete(raw, DefaultLanguageKey)
	for language, value := range raw {
		var entry LanguageEntry
		if err := json.Unmarshal(value, &entry); err != nil {
			return fmt.Errorf("localizedParameters.%s: %w", language, err)
		}
		decoded.Languages[language] = entry
	}
	*l = decoded
	return nil
}
