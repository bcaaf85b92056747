package insights

import (
	"fmt"

	"github.com/AnotherFullstackDev/robotoff-ctl/internal/factories"
	"github.com/AnotherFullstackDev/robotoff-ctl/internal/output"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newInsightsDetailCmd(locator *factories.SharedServicesLocator) *cobra.Command {
	return &cobra.Command{
		Use:   "detail <id>",
		Short: "Show a single insight",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseInsightID(args[0])
			if err != nil {
				return err
			}

			client := factories.NewClientFactory(locator).NewClient()
			insight, err := client.InsightDetail(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("fetching insight %s: %w", id, err)
			}

			return output.RenderData(locator.Out, locator.ErrOut, locator.Config.Output, insight)
		},
	}
}

// Robotoff insight ids are UUIDs; catching a typo here saves a round trip.
func parseInsightID(raw string) (string, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("insight id %q is not a valid UUID: %w", raw, err)
	}
	return id.String(), nil
}
