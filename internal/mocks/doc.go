// Package mocks provides function-field mock implementations of the store
// interfaces for handler and service tests. Unset fields return zero values
// so tests only wire the calls they care about.
package mocks
