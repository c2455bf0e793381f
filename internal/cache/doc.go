// Package cache provides in-memory caching with TTL expiration for menu lists.
//
// This package avoids redundant nordvpn invocations while the user navigates
// menus. Key features:
//   - In-memory storage scoped to a single interactive session (nothing is persisted)
//   - Configurable TTL (default 5 minutes) via config file or environment variable
//   - Expired entries are treated as absent and evicted on the access that finds them
//   - Clear() empties the store after connect/disconnect so stale lists never survive
//     a network state change
//
// The store is not safe for concurrent use. The prompt loop is single-threaded
// and each catalog service owns its own store, so no locking is needed.
package cache
