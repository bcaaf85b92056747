// Package logos describes the payload of GET /images/logos/{logoId}.
//
// The endpoint is not part of the published Robotoff schema. The fields below
// are what the service returns today and are decoded on a best-effort basis;
// Raw always carries the complete payload.
package logos

import "encoding/json"

type Logo struct {
	ID                 int      `json:"id" yaml:"id"`
	Index              int      `json:"index" yaml:"index"`
	Score              *float64 `json:"score,omitempty" yaml:"score,omitempty"`
	AnnotationValue    string   `json:"annotation_value,omitempty" yaml:"annotation_value,omitempty"`
	AnnotationValueTag string   `json:"annotation_value_tag,omitempty" yaml:"annotation_value_tag,omitempty"`
	AnnotationType     string   `json:"annotation_type,omitempty" yaml:"annotation_type,omitempty"`
	Barcode            string   `json:"barcode,omitempty" yaml:"barcode,omitempty"`

	Raw json.RawMessage `json:"-" yaml:"-"`
}

func (l *Logo) UnmarshalJSON(data []byte) error {
	type logo Logo
	var decoded logo
	// A field changing type upstream must not fail the whole load.
	_ = json.Unmarshal(data, &decoded)

	*l = Logo(decoded)
	l.Raw = append(json.RawMessage(nil), data...)
	return nil
}
