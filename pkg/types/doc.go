// Package types defines the Inventory and Backend interfaces, the Item entity,
// the caller-supplied LogSink, configuration, and the standard error types for
// the Stockpile inventory tracker.
package types
