package insights

import (
	"fmt"
	"log/slog"

	"github.com/AnotherFullstackDev/robotoff-ctl/internal/factories"
	"github.com/AnotherFullstackDev/robotoff-ctl/internal/output"
	"github.com/AnotherFullstackDev/robotoff-ctl/internal/robotoff/api"
	"github.com/AnotherFullstackDev/robotoff-ctl/internal/robotoff/api/annotations"
	"github.com/spf13/cobra"
)

type annotateOutput struct {
	StatusCode int                   `json:"status_code" yaml:"status_code"`
	Response   *annotations.Response `json:"response,omitempty" yaml:"response,omitempty"`
	Error      string                `json:"error,omitempty" yaml:"error,omitempty"`
}

func newInsightsAnnotateCmd(locator *factories.SharedServicesLocator) *cobra.Command {
	var annotation int
	var data string
	var noUpdate bool

	annotateCmd := &cobra.Command{
		Use:   "annotate <id>",
		Short: "Accept, reject or correct an insight",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseInsightID(args[0])
			if err != nil {
				return err
			}

			value := annotations.Value(annotation)
			switch value {
			case annotations.ValueReject, annotations.ValueSkip, annotations.ValueAccept:
			case annotations.ValueAcceptWithCorrected:
				if data == "" {
					return fmt.Errorf("--data is required with annotation %d", annotation)
				}
			default:
				return fmt.Errorf("annotation must be one of -1, 0, 1, 2, got %d", annotation)
			}

			request := annotations.Request{
				InsightID:  id,
				Annotation: value,
				Data:       data,
			}
			if noUpdate {
				update := false
				request.Update = &update
			}

			client, err := factories.NewClientFactory(locator).NewAuthenticatedClient()
			if err != nil {
				return fmt.Errorf("preparing authenticated client: %w", err)
			}

			slog.InfoContext(cmd.Context(), "submitting annotation", "insight_id", id, "annotation", value.String())

			result, err := client.SubmitAnnotation(cmd.Context(), request)
			if err != nil {
				return fmt.Errorf("annotating insight %s: %w", id, err)
			}

			out := annotateOutput{StatusCode: result.StatusCode, Response: result.Data}
			if !result.OK() {
				out.Error = string(result.ErrorBody)
			}
			if err := output.Render(locator.Out, locator.Config.Output, out); err != nil {
				return err
			}

			if err := api.MapResultToError(result); err != nil {
				return fmt.Errorf("annotating insight %s: %w", id, err)
			}
			return nil
		},
	}

	flags := annotateCmd.Flags()
	flags.IntVar(&annotation, "annotation", 0, "-1 reject, 0 skip, 1 accept, 2 accept with the corrected value from --data")
	flags.StringVar(&data, "data", "", "Corrected value, required with --annotation 2")
	flags.BoolVar(&noUpdate, "no-update", false, "Only record the annotation, do not update the product")
	if err := annotateCmd.MarkFlagRequired("annotation"); err != nil {
		panic(err)
	}

	return annotateCmd
}
