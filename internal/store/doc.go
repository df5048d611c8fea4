// Package store declares the persistence contract for tasks together with
// the errors every implementation reports. Concrete implementations live
// under internal/platform.
package store
