// Package court defines the pickleball court record and the in-memory
// table the pipeline stages operate on.
//
// A court is keyed by its place ID. Descriptive fields (name, address,
// coordinates, types) are set when the court is first discovered and never
// overwritten by later search hits. Enrichment fields (rating, phone,
// website, hours) start as null and are filled in at most once; applying
// enrichment never clears a field that is already set.
package court
