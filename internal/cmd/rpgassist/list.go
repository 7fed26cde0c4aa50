package rpgassist

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/louisbranch/rpgassist/internal/npc/storage/sqlite"
)

func (a *app) listCommand() *cobra.Command {
	var (
		limit     int
		format    string
		storePath string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored NPCs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			if !cmd.Flags().Changed("store") {
				storePath = a.cfg.DBPath
			}
			if strings.TrimSpace(storePath) == "" {
				return fmt.Errorf("no store configured (set --store or RPGASSIST_DB_PATH)")
			}

			store, err := sqlite.Open(cmd.Context(), storePath)
			if err != nil {
				return err
			}
			defer store.Close()

			npcs, err := store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			return a.writeNPCs(npcs, format)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum NPCs to list")
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format (text, json)")
	cmd.Flags().StringVar(&storePath, "store", "", "SQLite file to read (default $RPGASSIST_DB_PATH)")
	return cmd
}
