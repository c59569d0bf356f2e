package cmd

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gelaxyai/gelaxy/internal/app"
	"github.com/gelaxyai/gelaxy/internal/codegen"
	"github.com/gelaxyai/gelaxy/internal/config"
	"github.com/gelaxyai/gelaxy/internal/logger"
)

var (
	configFile            string
	envFile               string
	logFile               string
	debugMode             bool
	version, commit, date string
)

// v collects defaults, files, environment and the flags bound below.
var v = config.NewViper()

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(ver, c, d string) {
	version, commit, date = ver, c, d
	codegen.UserAgent = "gelaxy/" + ver
}

var rootCmd = &cobra.Command{
	Use:   "gelaxy",
	Short: "Terminal chat client that turns requests into code",
	Long: `Gelaxyai is a terminal chat client for code generation.
Describe what you need, pick a programming language, and the reply comes back
as a highlighted code block you can copy with one key.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initLogging)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "Config file (default $XDG_CONFIG_HOME/gelaxy/config.yaml)")
	pf.StringVar(&envFile, "env-file", ".env", "Env file with GELAXY_* overrides")
	pf.StringVar(&logFile, "log-file", logger.DefaultLogPath(), "Debug log location")
	pf.BoolVar(&debugMode, "debug", false, "Enable debug logging")
	pf.String("backend", "", "Generation backend (endpoint, openai, anthropic, demo)")
	pf.String("endpoint", "", "URL of the code generation service")
	pf.String("language", "", "Initial programming language")
	pf.String("locale", "", "Interface language (en, ru)")

	bindFlags(v, rootCmd, map[string]string{
		"backend":  config.KeyBackend,
		"endpoint": config.KeyEndpoint,
		"language": config.KeyLanguage,
		"locale":   config.KeyLocale,
	})

	rootCmd.Flags().String("theme", "", "Color theme")
	bindFlags(v, rootCmd, map[string]string{"theme": config.KeyTheme})
}

// bindFlags binds each named flag of cmd to a config key
func bindFlags(v *viper.Viper, cmd *cobra.Command, keys map[string]string) {
	for name, key := range keys {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			f = cmd.PersistentFlags().Lookup(name)
		}
		if f != nil {
			_ = v.BindPFlag(key, f)
		}
	}
}

func initLogging() {
	logger.SetDebug(debugMode)
}

// Execute runs the root command. Cancelling ctx aborts a pending request.
func Execute(ctx context.Context) error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.ExecuteContext(ctx)
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("gelaxy %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("gelaxy %s\n", version)
}

// loadConfig resolves and validates the configuration
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(v, config.LoadOptions{ConfigFile: configFile, EnvFile: envFile})
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	if err := logger.Init(logFile); err != nil {
		return err
	}
	defer logger.Close()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	gen, err := codegen.New(cfg)
	if err != nil {
		return err
	}

	log := logger.WithComponent("main")
	log.Info("starting", "version", version, "backend", cfg.Backend, "config", cfg.File)

	m := app.New(cfg, app.Options{Generator: gen, Version: version})
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
