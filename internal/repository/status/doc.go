// Package status persists the declared status and last known location of a user.
//
// Two implementations satisfy Repository: PostgresRepository for production and
// MemoryRepository for local runs and tests. Both keep the same location rules:
// only a safe status that carries a location overwrites the stored location.
package status
