package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/koba/sqlcatalog/internal/catalog"
	"github.com/koba/sqlcatalog/internal/diff"
	"github.com/koba/sqlcatalog/internal/introspect"
	"github.com/koba/sqlcatalog/internal/snapshot"
)

var (
	snapshotViews []string
	snapshotLimit int
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot [name]",
	Short: "Create a catalog snapshot",
	Long:  `Read a set of catalog views from the source server and store them as a named snapshot.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSnapshot,
}

var snapshotsCmd = &cobra.Command{
	Use:   "snapshots",
	Short: "List stored snapshots",
	Args:  cobra.NoArgs,
	RunE:  runSnapshots,
}

var showCmd = &cobra.Command{
	Use:   "show <snapshot> <view>",
	Short: "Print a view stored in a snapshot",
	Args:  cobra.ExactArgs(2),
	RunE:  runShow,
}

var diffCmd = &cobra.Command{
	Use:   "diff <snapshot1> <snapshot2>",
	Short: "Compare two snapshots",
	Long:  `Compare two catalog snapshots and display the differences.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runDiff,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <snapshot>",
	Short: "Delete a stored snapshot",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	snapshotCmd.Flags().StringSliceVar(&snapshotViews, "views", nil, "Comma-separated list of views to snapshot (default: every catalog view)")
	snapshotCmd.Flags().IntVar(&snapshotLimit, "limit", 0, "Maximum number of rows per view (default: unlimited)")
}

// defaultViews returns every catalog view. DMVs describe server state
// rather than schema and are only captured when asked for.
func defaultViews() []string {
	var names []string
	for _, v := range introspect.Views() {
		if v.Kind == catalog.CatalogView {
			names = append(names, v.Name)
		}
	}
	return names
}

func snapshotViewNames() []string {
	switch {
	case len(snapshotViews) > 0:
		return uniqueViewNames(snapshotViews)
	case len(cfg.Views) > 0:
		return uniqueViewNames(cfg.Views)
	default:
		return defaultViews()
	}
}

// uniqueViewNames normalizes names and drops repeats, keeping the first
// occurrence.
func uniqueViewNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	res := make([]string, 0, len(names))
	for _, name := range names {
		name = catalog.NormalizeViewName(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		res = append(res, name)
	}
	return res
}

func openStore(ctx context.Context) (*snapshot.Store, error) {
	return snapshot.Open(ctx, cfg.Store.Driver, cfg.Store.DSN)
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	opts, err := queryOptions(nil, snapshotLimit)
	if err != nil {
		return err
	}

	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	db, err := openSource(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	qctx, cancel := db.QueryContext(ctx)
	defer cancel()

	info, err := db.ServerInfo(qctx)
	if err != nil {
		return err
	}

	name := fmt.Sprintf("%s-%s", info.Database, time.Now().Format("2006-01-02-15-04-05"))
	if len(args) > 0 {
		name = args[0]
	}

	names := snapshotViewNames()
	log.Ctx(ctx).Info().
		Str("Snapshot", name).
		Str("Server", info.ServerName).
		Str("Database", info.Database).
		Int("ViewCount", len(names)).
		Msg("creating snapshot")

	results, err := introspect.LoadViews(qctx, db.DB(), names, opts...)
	if err != nil {
		return err
	}

	metadata := map[string]string{
		"server_name":     info.ServerName,
		"product_version": info.ProductVersion,
		"edition":         info.Edition,
		"database":        info.Database,
	}
	created, err := store.Create(ctx, name, metadata, results)
	if err != nil {
		return fmt.Errorf("failed to create snapshot: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Snapshot created successfully: %s (%d views, %d rows)\n", created.Name, created.ViewCount, created.RowCount)
	return nil
}

func runSnapshots(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	w, err := newWriter(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	infos, err := store.List(ctx)
	if err != nil {
		return err
	}
	return w.Snapshots(infos)
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	w, err := newWriter(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	snap, err := store.Load(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}
	view, ok := snap.Views[catalog.NormalizeViewName(args[1])]
	if !ok {
		return fmt.Errorf("snapshot %s has no view %s", snap.Name, args[1])
	}
	return w.Records(view.Columns, view.Records)
}

func runDiff(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	w, err := newWriter(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	snap1, err := store.Load(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to load snapshot1: %w", err)
	}
	snap2, err := store.Load(ctx, args[1])
	if err != nil {
		return fmt.Errorf("failed to load snapshot2: %w", err)
	}

	return w.Diff(diff.Compare(snap1, snap2))
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Delete(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Snapshot deleted: %s\n", args[0])
	return nil
}
