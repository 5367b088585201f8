// Package types defines the task record, its status enumeration, the
// due-date text format, storage configuration, and the standard error
// values shared by the todols packages.
package types
