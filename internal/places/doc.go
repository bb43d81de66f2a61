// Package places provides a typed HTTP client for the Places API (New).
//
// The client covers the three endpoints the pipeline needs: text search
// (paged, POST), place details (GET), and photo media (GET, raw bytes).
// Requests are paced with a shared rate limiter and a 429 response is
// retried exactly once after a fixed delay; the retry policy is injectable
// so tests run without sleeping.
package places
