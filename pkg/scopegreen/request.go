package scopegreen

import (
	"net/url"
	"strconv"
)

// Metric identifies an environmental metric type. Values are the
// display strings the API expects on the wire.
type Metric string

const (
	MetricCarbonFootprint Metric = "Carbon footprint"
	MetricEF31Score       Metric = "EF3.1 Score"
	MetricLandUse         Metric = "Land Use"
)

// Domain is a coarse category filter on the dataset.
type Domain string

const (
	DomainMaterialsAndProducts Domain = "Materials & Products"
	DomainProcessing           Domain = "Processing"
	DomainTransport            Domain = "Transport"
	DomainEnergy               Domain = "Energy"
	DomainDirectEmissions      Domain = "Direct emissions"
)

// Mode selects the API performance mode. The backend currently treats
// "pro" the same as "lite"; it is passed through unchanged.
type Mode string

const (
	ModeLite Mode = "lite"
	ModePro  Mode = "pro"
)

// SearchRequest describes one metrics lookup. Zero values mean "not
// provided": empty optional strings are omitted from the outbound
// query, and the enum fields fall back to the API defaults.
type SearchRequest struct {
	// ItemName is the item, material, process or energy type to look
	// up. Required.
	ItemName string
	// Metric defaults to MetricCarbonFootprint.
	Metric Metric
	// Year of the requested data (format YYYY, must be >= 2020). The
	// bound is enforced remotely; the client sends it as given.
	Year string
	// Geography is an ISO 3166-1 alpha-2 code or broader region.
	Geography string
	// NumMatches is how many ranked matches to return (1, 2 or 3).
	// Defaults to 1.
	NumMatches int
	// Unit requests conversion to a specific functional unit.
	Unit string
	// Mode defaults to ModeLite.
	Mode Mode
	// Domain defaults to DomainMaterialsAndProducts when unset.
	Domain Domain
	// NotEnglish signals that ItemName needs translation.
	NotEnglish bool
}

// effectiveDomain is the domain actually sent on the wire.
func (req SearchRequest) effectiveDomain() Domain {
	if req.Domain == "" {
		return DomainMaterialsAndProducts
	}
	return req.Domain
}

// queryParams builds the flat outbound query. Optional fields left
// empty are omitted entirely rather than sent as empty values.
func (req SearchRequest) queryParams() url.Values {
	metric := req.Metric
	if metric == "" {
		metric = MetricCarbonFootprint
	}
	mode := req.Mode
	if mode == "" {
		mode = ModeLite
	}
	numMatches := req.NumMatches
	if numMatches == 0 {
		numMatches = 1
	}

	q := url.Values{}
	q.Set("item_name", req.ItemName)
	q.Set("metric", string(metric))
	if req.Year != "" {
		q.Set("year", req.Year)
	}
	if req.Geography != "" {
		q.Set("geography", req.Geography)
	}
	q.Set("num_matches", strconv.Itoa(numMatches))
	if req.Unit != "" {
		q.Set("unit", req.Unit)
	}
	q.Set("mode", string(mode))
	q.Set("domain", string(req.effectiveDomain()))
	q.Set("not_english", strconv.FormatBool(req.NotEnglish))
	return q
}
