package bst

import "errors"

var (
	ErrEmptyTree = errors.New("bst: tree is empty")
	ErrOrder     = errors.New("bst: key order violated")
	ErrCount     = errors.New("bst: subtree count mismatch")
)
