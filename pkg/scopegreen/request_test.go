package scopegreen

import (
	"testing"
)

func TestQueryParamsDefaults(t *testing.T) {
	q := SearchRequest{ItemName: "steel beam"}.queryParams()

	want := map[string]string{
		"item_name":   "steel beam",
		"metric":      "Carbon footprint",
		"num_matches": "1",
		"mode":        "lite",
		"domain":      "Materials & Products",
		"not_english": "false",
	}
	for key, value := range want {
		if got := q.Get(key); got != value {
			t.Errorf("param %s: got %q, want %q", key, got, value)
		}
	}
	if len(q) != len(want) {
		t.Errorf("got %d params (%v), want %d", len(q), q, len(want))
	}
}

func TestQueryParamsOmitsAbsentFields(t *testing.T) {
	q := SearchRequest{ItemName: "cotton t-shirt"}.queryParams()

	for _, key := range []string{"year", "geography", "unit"} {
		if _, ok := q[key]; ok {
			t.Errorf("param %s should be omitted when absent, got %q", key, q.Get(key))
		}
	}
}

func TestQueryParamsExplicitValues(t *testing.T) {
	req := SearchRequest{
		ItemName:   "electricity grid mix",
		Metric:     MetricLandUse,
		Year:       "2023",
		Geography:  "DE",
		NumMatches: 3,
		Unit:       "kg CO2 eq / kWh",
		Mode:       ModePro,
		Domain:     DomainEnergy,
		NotEnglish: true,
	}
	q := req.queryParams()

	want := map[string]string{
		"item_name":   "electricity grid mix",
		"metric":      "Land Use",
		"year":        "2023",
		"geography":   "DE",
		"num_matches": "3",
		"unit":        "kg CO2 eq / kWh",
		"mode":        "pro",
		"domain":      "Energy",
		"not_english": "true",
	}
	for key, value := range want {
		if got := q.Get(key); got != value {
			t.Errorf("param %s: got %q, want %q", key, got, value)
		}
	}
}

func TestEffectiveDomain(t *testing.T) {
	tests := []struct {
		name   string
		domain Domain
		want   Domain
	}{
		{name: "absent", domain: "", want: DomainMaterialsAndProducts},
		{name: "explicit", domain: DomainTransport, want: DomainTransport},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := SearchRequest{ItemName: "x", Domain: tc.domain}.effectiveDomain()
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}
