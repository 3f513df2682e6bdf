// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the application's core logic, allowing the consistency rules to remain
// independent of the database technology behind them.
package store
