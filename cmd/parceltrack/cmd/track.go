package cmd

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"parcel_tracking/internal/client"
	"parcel_tracking/internal/models"

	"github.com/spf13/cobra"
)

var trackCmd = &cobra.Command{
	Use:   "track <trackingId>",
	Short: "Print a parcel and its tracking history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		api := client.New(cfg.Console.APIURL, cfg.Console.Timeout)
		return runTrack(cmd.Context(), api, args[0], cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(trackCmd)
}

func runTrack(ctx context.Context, api *client.Client, trackingID string, out io.Writer) error {
	p, err := api.TrackParcel(ctx, trackingID)
	if err != nil {
		return fmt.Errorf("track %s: %s", trackingID, client.Message(err))
	}
	history, err := api.ParcelEvents(ctx, trackingID)
	if err != nil {
		return fmt.Errorf("history of %s: %s", trackingID, client.Message(err))
	}
	printParcel(out, p, history.Events)
	return nil
}

func printParcel(out io.Writer, p *models.Parcel, events []models.ParcelEvent) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Tracking ID:\t%s\n", p.TrackingID)
	fmt.Fprintf(w, "Status:\t%s\n", p.Status)
	if p.CurrentLocation != "" {
		fmt.Fprintf(w, "Location:\t%s\n", p.CurrentLocation)
	}
	fmt.Fprintf(w, "From:\t%s <%s>\n", p.SenderName, p.SenderEmail)
	fmt.Fprintf(w, "To:\t%s <%s>\n", p.RecipientName, p.RecipientEmail)
	if p.EstimatedDeliveryDate != "" {
		fmt.Fprintf(w, "Estimated delivery:\t%s\n", p.EstimatedDeliveryDate)
	}
	if p.DeliveredAt != nil {
		fmt.Fprintf(w, "Delivered:\t%s\n", p.DeliveredAt.UTC().Format(time.RFC3339))
	}
	w.Flush()

	if len(events) == 0 {
		return
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "History:")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, e := range events {
		fmt.Fprintf(w, "  %s\t%s\t%s\n", e.OccurredAt.UTC().Format(time.RFC3339), e.Type, e.Description)
	}
	w.Flush()
}
