// Package pipeline orchestrates the fetch-merge-enrich run.
//
// A run executes three stages in order against one court table: search
// (paged text search per uncompleted query, first-seen-wins merge),
// enrichment (details and photo fetch for a capped number of unenriched
// courts), and the derived-field pass (street view links). Stage failures
// are scoped to their unit of work; only persistence and precondition
// errors abort the run.
package pipeline
