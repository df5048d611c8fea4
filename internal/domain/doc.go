// Package domain defines the Task entity, its validation rules and the
// aggregate TaskStats value. It has no knowledge of storage or transport.
package domain
