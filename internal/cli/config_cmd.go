package cli

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alexanderramin/onlyone/internal/cli/formatter"
	"github.com/alexanderramin/onlyone/internal/config"
	"github.com/alexanderramin/onlyone/internal/schedule"
	"github.com/alexanderramin/onlyone/internal/timetable"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change settings",
	}

	cmd.AddCommand(
		newConfigShowCmd(app),
		newConfigInitCmd(app),
		newConfigSetCmd(app),
	)

	return cmd
}

func newConfigShowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := yaml.Marshal(app.config())
			if err != nil {
				return fmt.Errorf("encoding config: %w", err)
			}
			out := cmd.OutOrStdout()
			if app.ConfigPath != "" {
				fmt.Fprintln(out, formatter.Dim("# "+app.ConfigPath))
			}
			fmt.Fprint(out, string(data))
			return nil
		},
	}

	return cmd
}

func newConfigInitCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Reset the config file to defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.ConfigPath == "" {
				return fmt.Errorf("no config file path")
			}
			cfg := config.DefaultConfig(filepath.Dir(app.ConfigPath))
			if err := config.Save(app.ConfigPath, cfg); err != nil {
				return err
			}
			app.Config = cfg
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote default config to %s\n", app.ConfigPath)
			return nil
		},
	}

	return cmd
}

// configKeys lists the keys `config set` accepts.
var configKeys = []string{"show_saturday", "task_sort", "log_level", "timezone", "db_path", "period.N"}

func newConfigSetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one setting (" + strings.Join(configKeys, ", ") + ")",
		Long: `Change one setting and save the config file.

Periods are set one at a time as "period.N HH:MM-HH:MM", e.g.
  onlyone config set period.1 08:50-10:20`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.ConfigPath == "" {
				return fmt.Errorf("no config file path")
			}
			// Edit the file as written so environment overrides are not persisted.
			cfg, err := config.Load(app.ConfigPath)
			if err != nil {
				return err
			}
			if err := applySetting(cfg, args[0], args[1]); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := config.Save(app.ConfigPath, cfg); err != nil {
				return err
			}
			app.Config = cfg
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", args[0], args[1])
			return nil
		},
	}

	return cmd
}

func applySetting(cfg *config.Config, key, value string) error {
	switch key {
	case "show_saturday":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("show_saturday: %q is not true or false", value)
		}
		cfg.ShowSaturday = b
	case "task_sort":
		if _, err := schedule.ParseTaskSortMode(value); err != nil {
			return err
		}
		cfg.TaskSort = value
	case "log_level":
		switch value {
		case "off", "debug", "info", "error":
			cfg.LogLevel = value
		default:
			return fmt.Errorf("log_level: %q is not off, debug, info or error", value)
		}
	case "timezone":
		cfg.Timezone = value
	case "db_path":
		cfg.DBPath = value
	default:
		n, ok := strings.CutPrefix(key, "period.")
		if !ok {
			return fmt.Errorf("unknown key %q (want one of %s)", key, strings.Join(configKeys, ", "))
		}
		p, err := strconv.Atoi(n)
		if err != nil || p < 1 || p > len(cfg.Periods) {
			return fmt.Errorf("unknown period %q", n)
		}
		start, end, ok := strings.Cut(value, "-")
		if !ok {
			return fmt.Errorf("period: %q is not HH:MM-HH:MM", value)
		}
		label := timetable.PeriodLabel{Start: start, End: end}
		if err := label.Validate(); err != nil {
			return fmt.Errorf("period %d: %w", p, err)
		}
		cfg.Periods[p-1] = label
	}
	return nil
}
