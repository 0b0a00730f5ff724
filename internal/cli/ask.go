package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"deskmate/internal/classify"
	"deskmate/internal/resolve"
)

var askJSON bool

var askCmd = &cobra.Command{
	Use:   "ask \"<command>\"",
	Short: "Process a single command and exit",
	Args:  cobra.MinimumNArgs(1),
	// The command prints its own styled outcome; the returned error only
	// drives the process exit code.
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		raw := strings.TrimSpace(strings.Join(args, " "))
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		resolver := buildResolver(cfg)
		classifier, err := buildClassifier(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		return runAsk(cmd.Context(), classifier, resolver, raw, askJSON, cmd.OutOrStdout())
	},
}

func runAsk(ctx context.Context, classifier classify.Classifier, resolver *resolve.Resolver, raw string, jsonOut bool, out io.Writer) error {
	req, err := classifier.Classify(ctx, raw)
	if err != nil {
		logger.Error("classification failed", "err", err)
		fmt.Fprintln(out, failStyle.Render("Oops! Something went wrong. Please try again later."))
		return err
	}
	resp := resolver.Dispatch(req, raw)

	if jsonOut {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(resp.Result)
	}
	printResponse(out, resp)
	if !resp.Result.OK() {
		return errors.New(resp.Result.Message)
	}
	return nil
}

func init() {
	askCmd.Flags().BoolVar(&askJSON, "json", false, "print the raw result as JSON")
}
