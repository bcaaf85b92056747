package questions

import (
	"fmt"
	"strconv"

	"github.com/AnotherFullstackDev/robotoff-ctl/internal/factories"
	"github.com/AnotherFullstackDev/robotoff-ctl/internal/output"
	"github.com/spf13/cobra"
)

func NewQuestionsCmd(locator *factories.SharedServicesLocator) *cobra.Command {
	return &cobra.Command{
		Use:   "questions <barcode>",
		Short: "List the open questions for a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || code < 0 {
				return fmt.Errorf("barcode must be a non-negative number, got %q", args[0])
			}

			client := factories.NewClientFactory(locator).NewClient()
			resp, err := client.QuestionsByProduct(cmd.Context(), code)
			if err != nil {
				return fmt.Errorf("fetching questions for %d: %w", code, err)
			}

			return output.RenderData(locator.Out, locator.ErrOut, locator.Config.Output, resp)
		},
	}
}
