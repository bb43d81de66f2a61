// Package catalog generates the search queries the pipeline runs.
//
// Queries are the Cartesian product of a template list and a city list,
// produced in a deterministic order (template-major, cities in list order).
// The built-in defaults cover 25 US metros; both lists can be overridden
// with a YAML config file.
package catalog
