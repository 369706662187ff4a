// Package repository implements data access for users, complaints,
// assignments and messages over database/sql. The sentinel values defined
// here let handlers map failures to HTTP statuses without inspecting
// driver error strings themselves.
package repository

import "errors"

// ErrNotFound is returned when a row with the requested id does not
// exist. Handlers translate it into a 404 response.
var ErrNotFound = errors.New("not found")

// ErrEmailExists is returned by UserRepo.Create when the normalized
// email collides with an existing account. Handlers translate it
// into a 400 response.
var ErrEmailExists = errors.New("email already exists")

// ErrAlreadyAssigned is returned by AssignmentRepo.Assign when the
// complaint already has an assignment. The unique key on complaint_id
// makes this reliable under concurrent assign attempts. Handlers
// translate it into a 400 response.
var ErrAlreadyAssigned = errors.New("complaint already assigned")
