// Package storage provides JSON-based persistence for the court table and
// the query checkpoint.
//
// The court table is stored as a JSON array at <data-dir>/courts.json and
// mirrored to <docs-dir>/courts.json for the static site. Completed search
// queries are checkpointed at <data-dir>/search_state.json. Photos land
// under <data-dir>/photos/. Missing files are treated as empty state so a
// first run starts clean; an existing court file without a checkpoint is
// recognized as a legacy dataset.
package storage
