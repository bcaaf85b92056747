package insights

import (
	"github.com/AnotherFullstackDev/robotoff-ctl/internal/factories"
	"github.com/spf13/cobra"
)

func NewInsightsCmd(locator *factories.SharedServicesLocator) *cobra.Command {
	insightsCmd := &cobra.Command{
		Use:   "insights",
		Short: "Query and annotate Robotoff insights",
	}

	insightsCmd.AddCommand(newInsightsListCmd(locator))
	insightsCmd.AddCommand(newInsightsDetailCmd(locator))
	insightsCmd.AddCommand(newInsightsAnnotateCmd(locator))

	return insightsCmd
}
