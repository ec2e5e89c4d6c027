// snapshot exports and imports personality snapshots against the
// snapshot table of a persona_matrix.db.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/danielpatrickdp/persona-matrix/internal/model"
	"github.com/danielpatrickdp/persona-matrix/internal/trace"
	_ "modernc.org/sqlite"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to persona_matrix.db")
	export := flag.String("export", "", "write the active snapshot to this file")
	importPath := flag.String("import", "", "read a snapshot file and store it as active")
	id := flag.String("id", "", "snapshot ID to export (default: active)")
	flag.Parse()

	if *dbPath == "" || (*export == "") == (*importPath == "") {
		fmt.Fprintln(os.Stderr, "usage: snapshot --db path/to/persona_matrix.db --export out.json [--id snapshot-id]")
		fmt.Fprintln(os.Stderr, "       snapshot --db path/to/persona_matrix.db --import in.json")
		os.Exit(2)
	}

	store, err := trace.NewStore(*dbPath, trace.DefaultStoreConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if *export != "" {
		err = runExport(store, *export, *id)
	} else {
		err = runImport(store, *importPath)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region modes

func runExport(store *trace.Store, outPath, id string) error {
	var snap model.Snapshot
	var err error
	if id != "" {
		snap, err = store.LoadSnapshot(id)
	} else {
		snap, err = store.LoadActiveSnapshot()
	}
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	fmt.Printf("exported snapshot to %s (exported_at=%s)\n", outPath, snap.ExportTimestamp)
	return nil
}

func runImport(store *trace.Store, inPath string) error {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", inPath, err)
	}

	var snap model.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("parse %s: %w", inPath, err)
	}

	id, err := store.SaveSnapshot(snap)
	if err != nil {
		return err
	}
	fmt.Printf("imported snapshot %s as active\n", id)
	return nil
}

// #endregion modes
