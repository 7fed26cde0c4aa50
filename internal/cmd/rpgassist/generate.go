package rpgassist

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/louisbranch/rpgassist/internal/npc"
	"github.com/louisbranch/rpgassist/internal/npc/storage/sqlite"
)

const (
	formatText = "text"
	formatJSON = "json"
)

func (a *app) generateCommand() *cobra.Command {
	var (
		count     int
		seed      int64
		format    string
		storePath string
	)
	cmd := &cobra.Command{
		Use:   "generate <templates>...",
		Short: "Generate NPCs from YAML or JSON template files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			if !cmd.Flags().Changed("seed") {
				seed = a.cfg.Seed
			}
			if !cmd.Flags().Changed("store") {
				storePath = a.cfg.DBPath
			}

			var templates []npc.Template
			for _, path := range args {
				loaded, err := npc.LoadTemplates(path)
				if err != nil {
					return err
				}
				a.logger.Debug("loaded templates", zap.String("path", path), zap.Int("count", len(loaded)))
				templates = append(templates, loaded...)
			}

			roller, err := a.roller(seed)
			if err != nil {
				return err
			}
			gen := npc.NewGenerator(roller, npc.WithLogger(a.logger))
			npcs, err := gen.GenerateAll(cmd.Context(), templates, count)
			if err != nil {
				return err
			}

			if strings.TrimSpace(storePath) != "" {
				if err := a.store(cmd, storePath, npcs); err != nil {
					return err
				}
			}
			return a.writeNPCs(npcs, format)
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "NPCs to generate per template")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed for reproducibility (0 = random, default $RPGASSIST_SEED)")
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format (text, json)")
	cmd.Flags().StringVar(&storePath, "store", "", "SQLite file to save NPCs in (default $RPGASSIST_DB_PATH)")
	return cmd
}

func (a *app) store(cmd *cobra.Command, path string, npcs []npc.NPC) error {
	store, err := sqlite.Open(cmd.Context(), path)
	if err != nil {
		return err
	}
	defer store.Close()
	for _, record := range npcs {
		if err := store.Put(cmd.Context(), record); err != nil {
			return err
		}
	}
	a.logger.Info("stored npcs", zap.String("path", path), zap.Int("count", len(npcs)))
	return nil
}

func (a *app) writeNPCs(npcs []npc.NPC, format string) error {
	if format == formatJSON {
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(npcs)
	}
	for i, record := range npcs {
		if i > 0 {
			if _, err := fmt.Fprintln(a.out); err != nil {
				return err
			}
		}
		if err := record.WriteText(a.out); err != nil {
			return err
		}
	}
	return nil
}

func validateFormat(format string) error {
	switch format {
	case formatText, formatJSON:
		return nil
	}
	return fmt.Errorf("unknown format %q (valid formats: text, json)", format)
}
