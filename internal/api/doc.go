// Package api handles incoming HTTP requests for the task resource:
// request decoding and validation, calls into the task service, and
// translation of results and errors into status codes and JSON bodies.
package api
