package questions

type Status string

const (
	StatusFound       Status = "found"
	StatusNoQuestions Status = "no_questions"
)

type Question struct {
	Barcode        string `json:"barcode" yaml:"barcode"`
	Type           string `json:"type" yaml:"type"`
	Value          string `json:"value,omitempty" yaml:"value,omitempty"`
	ValueTag       string `json:"value_tag,omitempty" yaml:"value_tag,omitempty"`
	Question       string `json:"question" yaml:"question"`
	InsightID      string `json:"insight_id" yaml:"insight_id"`
	InsightType    string `json:"insight_type" yaml:"insight_type"`
	SourceImageURL string `json:"source_image_url,omitempty" yaml:"source_image_url,omitempty"`
}

type Response struct {
	Status    Status     `json:"status" yaml:"status"`
	Questions []Question `json:"questions" yaml:"questions"`
}
