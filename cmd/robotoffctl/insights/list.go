package insights

import (
	"fmt"
	"log/slog"

	"github.com/AnotherFullstackDev/robotoff-ctl/internal/factories"
	"github.com/AnotherFullstackDev/robotoff-ctl/internal/lib"
	"github.com/AnotherFullstackDev/robotoff-ctl/internal/output"
	insightsapi "github.com/AnotherFullstackDev/robotoff-ctl/internal/robotoff/api/insights"
	"github.com/spf13/cobra"
)

func newInsightsListCmd(locator *factories.SharedServicesLocator) *cobra.Command {
	var query insightsapi.Query
	var orderBy string
	var page, count, annotation int
	var annotated bool
	var matchPatterns []string

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List insights matching the given filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("page") {
				query.Page = &page
			}
			if flags.Changed("count") {
				query.Count = &count
			}
			if flags.Changed("annotated") {
				query.Annotated = &annotated
			}
			if flags.Changed("annotation") {
				query.Annotation = &annotation
			}
			query.OrderBy = insightsapi.OrderBy(orderBy)

			client := factories.NewClientFactory(locator).NewClient()
			resp, err := client.Insights(cmd.Context(), query)
			if err != nil {
				return fmt.Errorf("listing insights: %w", err)
			}

			if resp != nil && len(matchPatterns) > 0 {
				filtered, err := filterByValueTag(resp.Insights, matchPatterns)
				if err != nil {
					return err
				}
				slog.DebugContext(cmd.Context(), "filtered insights by value tag", "before", len(resp.Insights), "after", len(filtered))
				resp.Insights = filtered
				resp.Count = len(filtered)
			}

			return output.RenderData(locator.Out, locator.ErrOut, locator.Config.Output, resp)
		},
	}

	flags := listCmd.Flags()
	flags.StringVar(&query.Barcode, "barcode", "", "Product barcode")
	flags.StringVar(&query.Type, "type", "", "Insight type (e.g. label, brand, category)")
	flags.StringVar(&query.Countries, "country", "", "Country tag (e.g. en:france)")
	flags.StringVar(&query.ValueTag, "value-tag", "", "Insight value tag (e.g. en:organic)")
	flags.StringVar(&query.Brands, "brands", "", "Comma separated brand tags")
	flags.StringVar(&query.Predictor, "predictor", "", "Predictor that generated the insight")
	flags.StringVar(&query.ServerType, "server-type", "", "Server type (off, obf, opff, opf)")
	flags.StringVar(&query.Campaigns, "campaign", "", "Campaign the insight belongs to")
	flags.StringVar(&orderBy, "order-by", "", "Sort order: random, popularity or confidence")
	flags.BoolVar(&annotated, "annotated", false, "Only annotated (true) or not annotated (false) insights")
	flags.IntVar(&annotation, "annotation", 0, "Annotation value (-1, 0, 1, 2)")
	flags.IntVar(&page, "page", 1, "Page number")
	flags.IntVar(&count, "count", 25, "Number of insights per page")
	flags.StringSliceVar(&matchPatterns, "match", nil, "Keep only insights whose value tag matches one of the glob patterns (count then reflects the filtered page)")

	return listCmd
}

func filterByValueTag(list []insightsapi.Insight, patterns []string) ([]insightsapi.Insight, error) {
	filtered := make([]insightsapi.Insight, 0, len(list))
	for _, insight := range list {
		ok, err := lib.MatchesOneOfPatterns(insight.ValueTag, patterns)
		if err != nil {
			return nil, fmt.Errorf("filtering insight %s: %w", insight.ID, err)
		}
		if ok {
			filtered = append(filtered, insight)
		}
	}
	return filtered, nil
}
