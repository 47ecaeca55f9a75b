package main

import (
	"github.com/spf13/cobra"

	"github.com/ersonp/survive-core/internal/domain/entities"
)

func newCharactersCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "characters",
		Short: "List playable characters",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(func(d *Deps) error {
				party := entities.NewParty(d.Config.Presets())
				displayCharacters(cmd.OutOrStdout(), party, verbose)
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show statistic descriptions")

	return cmd
}

func newWeaponsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "weapons",
		Short: "List the weapon catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(func(d *Deps) error {
				catalog, err := d.Config.Catalog()
				if err != nil {
					return err
				}
				displayWeapons(cmd.OutOrStdout(), catalog.Weapons())
				return nil
			})
		},
	}
}
