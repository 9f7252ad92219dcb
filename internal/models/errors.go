package models

import "errors"

// Domain-specific errors for comment records
var (
	// ErrCommentNotFound indicates that no stored comment has the requested id
	ErrCommentNotFound = errors.New("comment not found")

	// ErrDuplicateCommentID indicates that a committed id is already taken
	ErrDuplicateCommentID = errors.New("comment id already exists")
)
