// Package cli implements the command-line interface for the court scraper.
//
// The cli package provides the Cobra-based CLI: flag handling, credential
// validation, catalog selection, and summary output (text/JSON). It wires
// the places client, storage, and pipeline packages together for one run.
package cli
