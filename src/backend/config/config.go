package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	helpers "superbox/src/middleware/helpers"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "SUPERBOX"

var Actions = []string{"menu", "list", "delete", "export", "forward"}

type AppConfig struct {
	File       string
	RouterIP   string
	Username   string
	Password   string
	Verbose    int
	NoColor    bool
	WebhookURL string
	Action     string
	Tags       string
	Amount     string
	IDs        []string
}

// LoadConfig resolves flags, SUPERBOX_* environment variables and the
// settings file, in that order of precedence. Positional arguments
// [router_ip] [username] password override everything else.
func LoadConfig(args []string) (*AppConfig, error) {
	v := viper.New()
	flags := bindFlagsAndEnv(v)

	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("could not bind flags: %w", err)
	}

	configFile := getConfigFilePath(v)
	if configFile != "" {
		if err := loadFromFile(v, configFile); err != nil {
			return nil, err
		}
	}

	cfg := buildAppConfig(v, configFile)
	if err := applyPositional(cfg, flags.Args()); err != nil {
		return nil, err
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func bindFlagsAndEnv(v *viper.Viper) *pflag.FlagSet {
	flags := pflag.NewFlagSet("superbox", pflag.ContinueOnError)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: superbox [flags] [router_ip] [username] password")
		flags.PrintDefaults()
	}

	flags.String("config_file", "", "Settings file in JSON format")

	// router
	flags.String("router_ip", helpers.DefaultRouterIP, "IP address of the gateway")
	flags.String("username", helpers.DefaultUsername, "User name to be used for authentication")
	flags.String("password", "", "Password to be used for authentication")

	// output
	flags.CountP("verbose", "v", "Verbose output, repeat for more")
	flags.Bool("no_color", false, "Disable coloured output")

	// actions
	flags.String("action", "menu", "One of "+strings.Join(Actions, ", "))
	flags.String("tags", "all", "SMS type: read, unread, sent or all")
	flags.String("amount", helpers.DefaultAmount, "Messages per page, a multiple of 10")
	flags.String("ids", "", "Comma separated message ids for the delete action")
	flags.String("webhook_url", "", "Discord webhook for the forward action")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// NO_COLOR is a cross-tool convention, not ours
	_ = v.BindEnv("no_color", envPrefix+"_NO_COLOR", "NO_COLOR")

	return flags
}

func getConfigFilePath(v *viper.Viper) string {
	if file := v.GetString("config_file"); file != "" {
		return file
	}

	baseDir, err := helpers.BaseDir()
	if err != nil {
		return ""
	}

	path := filepath.Join(baseDir, helpers.SettingsFileName)
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

func loadFromFile(v *viper.Viper, path string) error {
	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("could not load config file: %w", err)
	}
	return nil
}

func buildAppConfig(v *viper.Viper, file string) *AppConfig {
	return &AppConfig{
		File:       file,
		RouterIP:   v.GetString("router_ip"),
		Username:   v.GetString("username"),
		Password:   v.GetString("password"),
		Verbose:    v.GetInt("verbose"),
		NoColor:    v.GetBool("no_color"),
		WebhookURL: v.GetString("webhook_url"),
		Action:     strings.ToLower(v.GetString("action")),
		Tags:       v.GetString("tags"),
		Amount:     v.GetString("amount"),
		IDs:        SplitIDs(v.GetString("ids")),
	}
}

func applyPositional(cfg *AppConfig, args []string) error {
	switch len(args) {
	case 0:
	case 1:
		cfg.Password = args[0]
	case 2:
		cfg.RouterIP, cfg.Password = args[0], args[1]
	case 3:
		cfg.RouterIP, cfg.Username, cfg.Password = args[0], args[1], args[2]
	default:
		return fmt.Errorf("too many arguments: %d", len(args))
	}
	return nil
}

func validateConfig(cfg *AppConfig) error {
	if cfg.RouterIP == "" {
		return errors.New("router ip is required")
	}
	if cfg.Username == "" {
		return errors.New("username is required")
	}

	known := false
	for _, action := range Actions {
		if cfg.Action == action {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unknown action %q", cfg.Action)
	}

	amount, err := strconv.Atoi(cfg.Amount)
	if err != nil || amount <= 0 || amount%10 != 0 {
		return fmt.Errorf("amount must be a positive multiple of 10, got %q", cfg.Amount)
	}

	if cfg.Action == "delete" && len(cfg.IDs) == 0 {
		return errors.New("delete action needs --ids")
	}
	return nil
}

// SplitIDs turns "1, 2;3" into [1 2 3].
func SplitIDs(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || r == ' '
	})

	ids := make([]string, 0, len(fields))
	for _, field := range fields {
		if field != "" {
			ids = append(ids, field)
		}
	}
	return ids
}
