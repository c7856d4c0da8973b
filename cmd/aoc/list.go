package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/aoc2024/puzzle"
)

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered days",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			for _, p := range puzzle.All() {
				fmt.Fprintf(w, "%2d  %s%s\n", p.Day, p.Title, describeParams(p.Defaults.Merge(a.cfg.DayParams(p.Day))))
			}
		},
	}
}

// describeParams renders params as " (k=v, ...)" in key order.
func describeParams(p puzzle.Params) string {
	if len(p) == 0 {
		return ""
	}
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%v", k, p[k])
	}

	return " (" + strings.Join(parts, ", ") + ")"
}

func (a *app) configCmd() *cobra.Command {
	var write string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Long: `Prints the configuration after defaults, the config file and flags
have been applied. With --write the result is saved to a file instead,
which is a convenient way to start an aoc.yaml.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if write != "" {
				if err := a.cfg.SaveToFile(write); err != nil {
					return err
				}
				a.logger.Info("wrote config", zap.String("path", write))
				return nil
			}
			data, err := yaml.Marshal(a.cfg)
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}
	cmd.Flags().StringVar(&write, "write", "", "Save the effective configuration to this path")

	return cmd
}
