package docs

import (
	"encoding/json"
	"testing"
)

func TestReadDocListsRoutes(t *testing.T) {
	var doc struct {
		Paths       map[string]map[string]json.RawMessage `json:"paths"`
		Definitions map[string]json.RawMessage            `json:"definitions"`
	}
	if err := json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc); err != nil {
		t.Fatalf("doc is not valid JSON: %v", err)
	}

	routes := map[string][]string{
		"/healthz":                               {"get"},
		"/livez":                                 {"get"},
		"/readyz":                                {"get"},
		"/api/trips":                             {"get", "post"},
		"/api/trips/{trip_id}":                   {"get", "put", "patch", "delete"},
		"/api/trips/{trip_id}/{kind}/{entry_id}": {"put", "delete"},
		"/api/lookup/hotels":                     {"get"},
	}
	for path, methods := range routes {
		for _, m := range methods {
			if _, ok := doc.Paths[path][m]; !ok {
				t.Errorf("missing %s %s", m, path)
			}
		}
	}
	for _, def := range []string{"dto.CityHotelsResponse", "dto.HealthResponse", "models.HotelEntry"} {
		if _, ok := doc.Definitions[def]; !ok {
			t.Errorf("missing definition %s", def)
		}
	}
}
