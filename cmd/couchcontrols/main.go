package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/hajimehoshi/ebiten/v2"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/mattn/go-isatty"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/depeter/couchcontrols/assets/icon"
	"github.com/depeter/couchcontrols/internal/app"
	"github.com/depeter/couchcontrols/internal/config"
)

var (
	version = "dev"
	commit  = "none"

	cfgFile    string
	logLevel   string
	fullscreen bool
	title      string

	cfg    *config.Config
	logger *slog.Logger
)

func main() {
	if isatty.IsTerminal(os.Stdout.Fd()) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "couchcontrols",
	Short: "A couch-friendly video player with auto-hiding controls",
	Long: `couchcontrols plays a file or URL through an embedded mpv and draws its
own control overlay: a seek bar that hides itself, a loading indicator,
an error panel with retry and a replay button at the end.`,
	Version:       fmt.Sprintf("%s (commit: %s)", version, commit),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "init" && cmd.Parent().Name() == "config" {
			return nil
		}

		var err error
		if cfgFile != "" {
			cfg, err = config.LoadFile(cfgFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if logLevel != "" {
			cfg.Logging.Level = logLevel
		}
		if cmd.Flags().Changed("fullscreen") {
			cfg.UI.Fullscreen = fullscreen
		}

		logger, err = config.InitLogger(&cfg.Logging)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

var playCmd = &cobra.Command{
	Use:   "play <path-or-url>",
	Short: "Play a file or URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source := args[0]
		game, err := app.NewGame(cfg, logger, source, title)
		if err != nil {
			return err
		}
		defer game.Close()

		ebiten.SetWindowSize(cfg.UI.Width, cfg.UI.Height)
		ebiten.SetWindowTitle(game.Title())
		ebiten.SetWindowIcon(icon.Generate())
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
		ebiten.SetFullscreen(cfg.UI.Fullscreen)

		logger.Info("playing", "source", source)
		if err := ebiten.RunGame(game); err != nil {
			return fmt.Errorf("run: %w", err)
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("couchcontrols version %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configPath()
		if err != nil {
			return err
		}
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("configuration file already exists: %s", path)
		}
		if err := config.DefaultConfig().SaveFile(path); err != nil {
			return fmt.Errorf("failed to save default configuration: %w", err)
		}
		fmt.Printf("Default configuration generated at: %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return toml.NewEncoder(cmd.OutOrStdout()).Encode(cfg)
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Display configuration file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configPath()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

func configPath() (string, error) {
	if cfgFile != "" {
		return filepath.Abs(cfgFile)
	}
	return config.ConfigPath()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $XDG_CONFIG_HOME/couchcontrols/config.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("log-level", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"debug", "info", "warn", "error"}, cobra.ShellCompDirectiveNoFileComp
	}))
	playCmd.Flags().BoolVar(&fullscreen, "fullscreen", false, "start fullscreen (overrides config)")
	playCmd.Flags().StringVar(&title, "title", "", "title shown in the overlay (default: file name)")

	configCmd.AddCommand(configInitCmd, configShowCmd, configPathCmd)
	rootCmd.AddCommand(playCmd, versionCmd, configCmd)
}
