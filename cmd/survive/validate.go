package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/survive-core/internal/application/handlers"
)

func newValidateCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "validate [file...]",
		Short: "Validate content files",
		Long: `Checks that every record of each content file is a valid event. With no
arguments, the configured locations are validated.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "auto", "File format: auto, json, yaml, csv, ini")

	return cmd
}

func runValidate(cmd *cobra.Command, paths []string, format string) error {
	if !isValidFormat(format) {
		return fmt.Errorf("invalid format %q, valid formats: %v", format, validFormats)
	}

	return withDeps(func(d *Deps) error {
		handler := handlers.NewValidateHandler(d.ContentHandler)

		var results []handlers.ValidateResult
		var err error
		if len(paths) > 0 {
			results, err = handler.Handle(cmd.Context(), paths, format)
		} else {
			results, err = validateConfigured(cmd, d, handler)
		}
		if err != nil {
			return err
		}

		displayValidateResults(cmd.OutOrStdout(), results)

		if failed := handlers.Failed(results); failed > 0 {
			return fmt.Errorf("%d of %d files invalid", failed, len(results))
		}
		return nil
	})
}

func validateConfigured(cmd *cobra.Command, d *Deps, handler *handlers.ValidateHandler) ([]handlers.ValidateResult, error) {
	sources := d.Config.Content.Sources(d.BasePath)
	if len(sources) == 0 {
		return nil, fmt.Errorf("no content configured (pass files or run 'survive init')")
	}

	results := make([]handlers.ValidateResult, 0, len(sources))
	for _, src := range sources {
		r, err := handler.Handle(cmd.Context(), []string{src.Path}, src.Format)
		if err != nil {
			return nil, err
		}
		r[0].Location = src.LocationName()
		results = append(results, r...)
	}
	return results, nil
}
