package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/piresc/movecar/internal/pkg/logger"
	"github.com/piresc/movecar/internal/pkg/models"
	"github.com/piresc/movecar/services/movecar/escalation"
	"github.com/piresc/movecar/services/requester"
	"github.com/spf13/cobra"
)

type options struct {
	baseURL string
	timeout time.Duration
	lang    string
	plate   string
}

func main() {
	opts := &options{}

	root := &cobra.Command{
		Use:           "requester",
		Short:         "Ask a car owner to move their car",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.baseURL, "base-url", "http://localhost:8080", "movecar service URL")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 60*time.Second, "per-request timeout, covers delayed deliveries")
	root.PersistentFlags().StringVar(&opts.lang, "lang", "", "language of server messages (zh or en)")
	root.PersistentFlags().StringVar(&opts.plate, "plate", "", "license plate")
	_ = root.MarkPersistentFlagRequired("plate")

	root.AddCommand(verifyCmd(opts), notifyCmd(opts), statusCmd(opts))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", describe(err))
		os.Exit(1)
	}
}

func verifyCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check whether a plate is registered",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client := requester.NewClient(opts.baseURL, opts.timeout, opts.lang)
			result, err := client.VerifyLicense(cmd.Context(), opts.plate)
			if err != nil {
				return err
			}
			if !result.Success {
				return errors.New(result.Message)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is registered\n", result.License)
			if result.Phone != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Owner phone: %s\n", result.Phone)
			}
			return nil
		},
	}
}

func notifyCmd(opts *options) *cobra.Command {
	var (
		message  string
		lat, lng float64
		retries  int
		verbose  bool
	)

	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Notify the owner and follow the request until they confirm",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if verbose {
				zapLogger, err := logger.NewZapLogger(logger.ZapConfig{Level: "debug", ServiceName: "requester"})
				if err != nil {
					return err
				}
				defer zapLogger.Close()
				logger.SetGlobalLogger(zapLogger)
			} else {
				logger.SetGlobalLogger(logger.NewNopLogger())
			}

			in := requester.NotifyInput{Plate: opts.plate, Message: message}
			if cmd.Flags().Changed("lat") && cmd.Flags().Changed("lng") {
				in.Location = models.NewCoordinates(lat, lng)
			}

			client := requester.NewClient(opts.baseURL, opts.timeout, opts.lang)
			session := requester.NewSession(client, escalation.DefaultPolicy(), cmd.OutOrStdout(), retries)

			outcome, err := session.Run(cmd.Context(), in)
			if err != nil {
				return err
			}
			if !outcome.Confirmed {
				return fmt.Errorf("owner did not confirm after %d notifies", outcome.Notifies)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&message, "message", "", "message shown to the owner")
	cmd.Flags().Float64Var(&lat, "lat", 0, "your latitude (WGS-84)")
	cmd.Flags().Float64Var(&lng, "lng", 0, "your longitude (WGS-84)")
	cmd.Flags().IntVar(&retries, "retries", 2, "re-notifies allowed after the first one")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "log polling details")
	return cmd
}

func statusCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current request status of a plate",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client := requester.NewClient(opts.baseURL, opts.timeout, opts.lang)
			view, err := client.CheckStatus(cmd.Context(), opts.plate)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Status: %s\n", view.Status)
			fmt.Fprintf(out, "Owner allows call: %t\n", view.AllowCall)
			if loc := view.OwnerLocation; loc != nil {
				fmt.Fprintf(out, "Owner location: %s\n", loc.AmapURL)
			}
			if esc := view.Escalation; esc != nil {
				fmt.Fprintf(out, "Notifies: %d, retry in %ds, call unlocked: %t\n",
					esc.NotifyCount, esc.RetryAfterSeconds, esc.CallUnlocked)
			}
			return nil
		},
	}
}

func describe(err error) string {
	var apiErr *requester.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}
