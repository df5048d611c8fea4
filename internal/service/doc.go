// Package service implements the task use cases on top of the store.TaskStore
// contract.
//
// Services own the small amount of business logic the API needs: new tasks
// always start incomplete, and update, toggle and delete report
// ErrTaskNotFound when the target id is absent. Read-then-write operations run
// inside a single store transaction.
package service
