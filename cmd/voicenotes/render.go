package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/voice-notes/internal/render"
)

var renderCmd = &cobra.Command{
	Use:   "render <notes.txt>",
	Short: "Render an existing notes file without calling any cloud service",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if format, _ := cmd.Flags().GetString("format"); format != "" {
			cfg.Render.Format = format
		}

		r, err := render.New(cfg.Render, log)
		if err != nil {
			return err
		}
		out, err := r.Render(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	renderCmd.Flags().String("format", "", "pdf or docx (overrides render.format)")
	rootCmd.AddCommand(renderCmd)
}
