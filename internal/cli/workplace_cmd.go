package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/onlyone/internal/cli/formatter"
	"github.com/alexanderramin/onlyone/internal/domain"
	"github.com/spf13/cobra"
)

func newWorkplaceCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "workplace",
		Aliases: []string{"wp"},
		Short:   "Manage workplaces and hourly rates",
	}

	cmd.AddCommand(
		newWorkplaceAddCmd(app),
		newWorkplaceListCmd(app),
		newWorkplaceEditCmd(app),
		newWorkplaceRemoveCmd(app),
	)

	return cmd
}

func parseColor(input string) (domain.Color, error) {
	c := strings.ToLower(input)
	if !domain.ValidColors[c] {
		return "", fmt.Errorf("invalid color %q (want red, blue, green, orange, purple, pink, yellow or gray)", input)
	}
	return domain.Color(c), nil
}

func newWorkplaceAddCmd(app *App) *cobra.Command {
	var name, color, notes string
	var rate float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a workplace",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseColor(color)
			if err != nil {
				return err
			}
			w := &domain.Workplace{Name: name, HourlyRate: rate, Color: c, Notes: notes}
			if err := app.Workplaces.Create(context.Background(), w); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added workplace %s at %s/h (%s)\n",
				w.Name, formatter.FormatYen(w.HourlyRate), formatter.TruncID(w.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Workplace name")
	cmd.Flags().Float64Var(&rate, "rate", 0, "Hourly rate in yen")
	cmd.Flags().StringVar(&color, "color", string(domain.ColorBlue), "Color tag")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("rate")

	return cmd
}

func newWorkplaceListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List workplaces",
		RunE: func(cmd *cobra.Command, args []string) error {
			workplaces, err := app.Workplaces.List(context.Background())
			if err != nil {
				return err
			}
			if len(workplaces) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No workplaces found.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderBox("Workplaces", formatter.FormatWorkplaces(workplaces)))
			return nil
		},
	}

	return cmd
}

func newWorkplaceEditCmd(app *App) *cobra.Command {
	var name, color, notes string
	var rate float64

	cmd := &cobra.Command{
		Use:   "edit <name-or-id>",
		Short: "Edit a workplace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			w, err := resolveWorkplace(ctx, app, args[0])
			if err != nil {
				return err
			}

			w.Name = domain.StrFromPtrWithDefault(w.Name, changedStr(cmd, "name", name))
			w.Notes = domain.StrFromPtrWithDefault(w.Notes, changedStr(cmd, "notes", notes))
			w.HourlyRate = domain.Float64FromPtrWithDefault(w.HourlyRate, changedFloat(cmd, "rate", rate))
			if cmd.Flags().Changed("color") {
				if w.Color, err = parseColor(color); err != nil {
					return err
				}
			}

			if err := app.Workplaces.Update(ctx, w); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated workplace %s\n", w.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Workplace name")
	cmd.Flags().Float64Var(&rate, "rate", 0, "Hourly rate in yen")
	cmd.Flags().StringVar(&color, "color", "", "Color tag")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes")

	return cmd
}

func newWorkplaceRemoveCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm <name-or-id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete a workplace; its shifts are kept",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			w, err := resolveWorkplace(ctx, app, args[0])
			if err != nil {
				return err
			}
			orphaned, err := app.Workplaces.Delete(ctx, w.ID)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted workplace %s\n", w.Name)
			if orphaned > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim(fmt.Sprintf(
					"%d shifts now show as %q and earn nothing in stats.", orphaned, domain.UnknownWorkplaceName)))
			}
			return nil
		},
	}

	return cmd
}
