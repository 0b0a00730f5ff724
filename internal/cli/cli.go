// Package cli is the interactive surface: a cobra command tree wrapping the
// classifier, router and stores. Presentation only; every rule lives in the
// resolve package.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"deskmate/internal/classify"
	"deskmate/internal/config"
	"deskmate/internal/resolve"
	"deskmate/internal/store"
)

var (
	cfgPath string
	rootDir string
	verbose bool

	Version = "dev"

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	botStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("78"))

	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

var rootCmd = &cobra.Command{
	Use:   "deskmate",
	Short: "Natural-language assistant for contacts and tasks",
	Long: titleStyle.Render("deskmate") + " - manage contacts and tasks in plain English\n\n" +
		"Commands are classified by a language model and applied to two\n" +
		"local CSV stores. Try: deskmate ask \"add contact Ann, 111, a@x.com\"",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// .env in the working directory, if present.
		_ = godotenv.Load()
		if verbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config.yaml")
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", "", "store root (default: ~/.deskmate or DESKMATE_ROOT)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}

func Execute() error {
	return rootCmd.Execute()
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return cfg, err
	}
	if rootDir != "" {
		cfg.Root = rootDir
	}
	return cfg, nil
}

func buildResolver(cfg config.Config) *resolve.Resolver {
	contacts := store.New(cfg.ContactsPath(), store.Contacts)
	tasks := store.New(cfg.TasksPath(), store.Tasks)
	return resolve.New(contacts, tasks)
}

func buildClassifier(ctx context.Context, cfg config.Config) (classify.Classifier, error) {
	return classify.NewGemini(ctx, classify.GeminiConfig{
		APIKey: cfg.APIKey(),
		Model:  cfg.Model,
	})
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the contact and task stores",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		for _, s := range []*store.Store{
			store.New(cfg.ContactsPath(), store.Contacts),
			store.New(cfg.TasksPath(), store.Tasks),
		} {
			if err := s.Init(); err != nil {
				return err
			}
			logger.Info("store ready", "path", dimStyle.Render(s.Path))
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(titleStyle.Render("deskmate") + " " + dimStyle.Render(Version))
	},
}
