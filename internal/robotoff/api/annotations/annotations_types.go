package annotations

import (
	"net/url"
	"strconv"
)

type Value int

// -1 0 1 2
const (
	ValueReject              Value = -1
	ValueSkip                Value = 0
	ValueAccept              Value = 1
	ValueAcceptWithCorrected Value = 2
)

func (v Value) String() string {
	switch v {
	case ValueReject:
		return "reject"
	case ValueSkip:
		return "skip"
	case ValueAccept:
		return "accept"
	case ValueAcceptWithCorrected:
		return "accept_with_correction"
	default:
		return strconv.Itoa(int(v))
	}
}

type Request struct {
	InsightID  string
	Annotation Value
	// Update is sent as 0/1 when set. The service treats a missing value as 1.
	Update *bool
	// Data carries the corrected value for ValueAcceptWithCorrected.
	Data string
}

// Form encodes the request as the service expects it on the wire
// (application/x-www-form-urlencoded).
func (r Request) Form() url.Values {
	form := url.Values{
		"insight_id": {r.InsightID},
		"annotation": {strconv.Itoa(int(r.Annotation))},
	}
	if r.Update != nil {
		update := "0"
		if *r.Update {
			update = "1"
		}
		form.Set("update", update)
	}
	if r.Data != "" {
		form.Set("data", r.Data)
	}
	return form
}

type Status string

const (
	StatusSaved                 Status = "saved"
	StatusUpdated               Status = "updated"
	StatusErrorAlreadyAnnotated Status = "error_already_annotated"
	StatusErrorInvalidData      Status = "error_invalid_data"
	StatusErrorUpdatingProduct  Status = "error_updating_product"
)

type Response struct {
	Status      Status `json:"status" yaml:"status"`
	StatusCode  int    `json:"status_code,omitempty" yaml:"status_code,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}
