package cli

import (
	"bufio"
	"crypto/rand"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"

	"deskmate/internal/resolve"
)

const farewell = "Goodbye! Have a great day!"

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Interactive assistant session",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		resolver := buildResolver(cfg)
		classifier, err := buildClassifier(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("\nHow can I assist you today? (Type 'exit' to quit): ")
			if !scanner.Scan() {
				fmt.Println()
				fmt.Println(botStyle.Render(farewell))
				return scanner.Err()
			}
			raw := strings.TrimSpace(scanner.Text())
			if raw == "" {
				continue
			}
			if strings.EqualFold(raw, "exit") {
				fmt.Println(botStyle.Render(farewell))
				return nil
			}

			id := interactionID()
			logger.Debug("processing command", "id", id, "raw", raw)

			req, err := classifier.Classify(cmd.Context(), raw)
			if err != nil {
				logger.Debug("classification failed", "id", id, "err", err)
				fmt.Println(failStyle.Render("Oops! Something went wrong. Please try again later."))
				continue
			}
			logger.Debug("classified", "id", id, "operation", req.Operation, "target", req.Target)

			resp := resolver.Dispatch(req, raw)
			printResponse(os.Stdout, resp)
		}
	},
}

func printResponse(w io.Writer, resp resolve.Response) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, dimStyle.Render("🤖 Here's what I found:"))
	if resp.Result.OK() {
		fmt.Fprintln(w, successStyle.Render(resp.Summary))
	} else {
		fmt.Fprintln(w, failStyle.Render(resp.Summary))
	}
	if table := renderTable(resp.Result.Data); table != "" {
		fmt.Fprintln(w, table)
	}
}

// interactionID tags one chat turn in debug logs.
func interactionID() string {
	id, err := ulid.New(ulid.Now(), rand.Reader)
	if err != nil {
		return "cmd_unknown"
	}
	return "cmd_" + id.String()
}
