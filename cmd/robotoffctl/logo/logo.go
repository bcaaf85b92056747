package logo

import (
	"encoding/json"
	"fmt"

	"github.com/AnotherFullstackDev/robotoff-ctl/internal/factories"
	"github.com/AnotherFullstackDev/robotoff-ctl/internal/output"
	"github.com/spf13/cobra"
)

func NewLogoCmd(locator *factories.SharedServicesLocator) *cobra.Command {
	return &cobra.Command{
		Use:   "logo <id>",
		Short: "Show a logo annotation (undocumented endpoint, payload printed as received)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := factories.NewClientFactory(locator).NewClient()
			logo, err := client.LoadLogo(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("loading logo %s: %w", args[0], err)
			}
			if logo == nil {
				return output.RenderData[any](locator.Out, locator.ErrOut, locator.Config.Output, nil)
			}

			// The payload is not schema checked, print it whole rather than the known fields.
			var raw any
			if err := json.Unmarshal(logo.Raw, &raw); err != nil {
				return fmt.Errorf("decoding logo %s payload: %w", args[0], err)
			}
			return output.Render(locator.Out, locator.Config.Output, raw)
		},
	}
}
