package validate

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/davidahmann/paramdump/core/param"
	"github.com/davidahmann/paramdump/internal/scenarios"
)

func TestValidateParamFixtures(t *testing.T) {
	cases := []struct {
		name    string
		payload string
	}{
		{name: "full", payload: scenarios.FullParamJSON},
		{name: "minimal", payload: scenarios.MinimalParamJSON},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := ValidateParam([]byte(tc.payload)); err != nil {
				t.Fatalf("expected valid param fixture, got error: %v", err)
			}
		})
	}
}

func TestValidateParamRejectsInvalidShapes(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(doc map[string]any)
	}{
		{name: "missing_default_rating", mutate: func(doc map[string]any) {
			delete(doc["ageLevel"].(map[string]any), "default")
		}},
		{name: "missing_default_language", mutate: func(doc map[string]any) {
			delete(doc["localizedParameters"].(map[string]any), "defaultLanguage")
		}},
		{name: "fractional_attribute", mutate: func(doc map[string]any) {
			doc["attribute"] = 1.5
		}},
		{name: "string_rating", mutate: func(doc map[string]any) {
			doc["ageLevel"].(map[string]any)["US"] = "7"
		}},
		{name: "missing_content_id", mutate: func(doc map[string]any) {
			delete(doc, "contentId")
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var doc map[string]any
			if err := json.Unmarshal([]byte(scenarios.FullParamJSON), &doc); err != nil {
				t.Fatalf("unmarshal fixture: %v", err)
			}
			tc.mutate(doc)
			payload, err := json.Marshal(doc)
			if err != nil {
				t.Fatalf("marshal mutated fixture: %v", err)
			}
			if err := ValidateParam(payload); err == nil {
				t.Fatalf("expected schema validation failure")
			}
		})
	}
}

func TestEncodedDescriptorsConformToSchema(t *testing.T) {
	for _, payload := range []string{scenarios.FullParamJSON, scenarios.MinimalParamJSON} {
		descriptor, err := param.Parse([]byte(payload))
		if err != nil {
			t.Fatalf("parse fixture: %v", err)
		}
		canonical, err := param.MarshalCanonical(descriptor)
		if err != nil {
			t.Fatalf("canonical encode: %v", err)
		}
		if err := ValidateParam(canonical); err != nil {
			t.Fatalf("encoded descriptor failed schema validation: %v\n%s", err, string(canonical))
		}
	}
}

func TestValidateJSONFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "param.json", []byte(scenarios.MinimalParamJSON), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if err := afero.WriteFile(fs, "broken.json", []byte(`{"contentId":1}`), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	schema := []byte(`{"type":"object","required":["contentId"],"properties":{"contentId":{"type":"string"}}}`)

	if err := ValidateJSONFile(fs, schema, "param.json"); err != nil {
		t.Fatalf("expected valid file, got error: %v", err)
	}
	if err := ValidateJSONFile(fs, schema, "broken.json"); err == nil {
		t.Fatalf("expected invalid file to fail")
	}
	err := ValidateJSONFile(fs, schema, "missing.json")
	if err == nil || !strings.Contains(err.Error(), "read json") {
		t.Fatalf("expected read error for missing file, got %v", err)
	}
}

func TestCompileRejectsInvalidSchema(t *testing.T) {
	if _, err := Compile([]byte(`{`)); err == nil {
		t.Fatalf("expected compile error for malformed schema")
	}
	if err := ValidateJSON([]byte(`{`), []byte(`{}`)); err == nil {
		t.Fatalf("expected validate error for malformed schema")
	}
}
