package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/AnotherFullstackDev/robotoff-ctl/internal/config"
	"gopkg.in/yaml.v3"
)

func Render(w io.Writer, format config.OutputFormat, v any) error {
	switch format {
	case config.OutputJSON, "":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(v); err != nil {
			return fmt.Errorf("encoding json output: %w", err)
		}
	case config.OutputYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return fmt.Errorf("encoding yaml output: %w", err)
		}
		if err := encoder.Close(); err != nil {
			return fmt.Errorf("flushing yaml output: %w", err)
		}
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
	return nil
}

// RenderData renders data, or reports on errW that the service returned nothing.
func RenderData[T any](w, errW io.Writer, format config.OutputFormat, data *T) error {
	if data == nil {
		_, err := fmt.Fprintln(errW, "no data returned")
		return err
	}
	return Render(w, format, data)
}
