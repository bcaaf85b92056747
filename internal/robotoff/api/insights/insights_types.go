package insights

import (
	"net/url"
	"strconv"
)

type Status string

const (
	StatusFound      Status = "found"
	StatusNoInsights Status = "no_insights"
)

type OrderBy string

const (
	OrderByRandom     OrderBy = "random"
	OrderByPopularity OrderBy = "popularity"
	OrderByConfidence OrderBy = "confidence"
)

type Insight struct {
	ID                  string         `json:"id" yaml:"id"`
	Type                string         `json:"type" yaml:"type"`
	Barcode             string         `json:"barcode" yaml:"barcode"`
	Data                map[string]any `json:"data,omitempty" yaml:"data,omitempty"`
	Timestamp           string         `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
	CompletedAt         string         `json:"completed_at,omitempty" yaml:"completed_at,omitempty"`
	Value               string         `json:"value,omitempty" yaml:"value,omitempty"`
	ValueTag            string         `json:"value_tag,omitempty" yaml:"value_tag,omitempty"`
	Predictor           string         `json:"predictor,omitempty" yaml:"predictor,omitempty"`
	PredictorVersion    string         `json:"predictor_version,omitempty" yaml:"predictor_version,omitempty"`
	Countries           []string       `json:"countries,omitempty" yaml:"countries,omitempty"`
	Brands              []string       `json:"brands,omitempty" yaml:"brands,omitempty"`
	Annotation          *int           `json:"annotation,omitempty" yaml:"annotation,omitempty"`
	AutomaticProcessing bool           `json:"automatic_processing" yaml:"automatic_processing"`
	ServerType          string         `json:"server_type,omitempty" yaml:"server_type,omitempty"`
	SourceImage         string         `json:"source_image,omitempty" yaml:"source_image,omitempty"`
	Confidence          *float64       `json:"confidence,omitempty" yaml:"confidence,omitempty"`
	Campaign            []string       `json:"campaign,omitempty" yaml:"campaign,omitempty"`
	UniqueScansN        int            `json:"unique_scans_n,omitempty" yaml:"unique_scans_n,omitempty"`
}

type Response struct {
	Count    int       `json:"count" yaml:"count"`
	Insights []Insight `json:"insights" yaml:"insights"`
	Status   Status    `json:"status" yaml:"status"`
}

// Query filters GET /insights. Zero-valued fields are not sent.
type Query struct {
	Page       *int
	Count      *int
	Type       string
	Barcode    string
	Annotated  *bool
	Annotation *int
	ValueTag   string
	Brands     string
	Countries  string
	Predictor  string
	OrderBy    OrderBy
	ServerType string
	Campaigns  string
}

func (q Query) Values() url.Values {
	values := url.Values{}
	setString := func(key, value string) {
		if value != "" {
			values.Set(key, value)
		}
	}
	setInt := func(key string, value *int) {
		if value != nil {
			values.Set(key, strconv.Itoa(*value))
		}
	}

	setInt("page", q.Page)
	setInt("count", q.Count)
	setString("type", q.Type)
	setString("barcode", q.Barcode)
	if q.Annotated != nil {
		values.Set("annotated", strconv.FormatBool(*q.Annotated))
	}
	setInt("annotation", q.Annotation)
	setString("value_tag", q.ValueTag)
	setString("brands", q.Brands)
	setString("countries", q.Countries)
	setString("predictor", q.Predictor)
	setString("order_by", string(q.OrderBy))
	setString("server_type", q.ServerType)
	setString("campaigns", q.Campaigns)

	return values
}
