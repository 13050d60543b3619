package main

import (
	"context"
	"os"
	"strings"
	"time"

	"consentadmin/internal/consent/registry"
	"consentadmin/internal/consent/util"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func indexesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "indexes",
		Short: "Create the collection indexes and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			reg, err := registry.Load()
			if err != nil {
				return err
			}

			store, err := openStore(cfg)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()
			defer store.Close(ctx)

			if err := store.EnsureIndexes(ctx, reg.All()); err != nil {
				return err
			}
			util.GetLogger().Info("indexes ensured", "entities", len(reg.All()))
			return nil
		},
	}
}

func entitiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "entities",
		Short: "List the managed entities",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := registry.Load()
			if err != nil {
				return err
			}
			renderEntities(reg.All())
			return nil
		},
	}
}

func renderEntities(entities []*registry.Entity) {
	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"Entity", "Path", "Collection", "Default", "Statuses", "Actions", "Operations"})
	for _, e := range entities {
		tw.AppendRow(table.Row{
			e.Name,
			"/api/v1/" + e.Path,
			e.Collection,
			e.DefaultStatus,
			strings.Join(e.Statuses, ", "),
			strings.Join(e.Actions(), ", "),
			strings.Join(e.Operations, ", "),
		})
	}
	tw.Render()
}
