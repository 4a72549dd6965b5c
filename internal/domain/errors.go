package domain

import "errors"

// Request-scoped failures. Every service operation surfaces one of these
// kinds so the API layer can map them to precise responses instead of a
// generic 500.
var (
	// Validation: rejected before any mutation.
	ErrInvalidAmount = errors.New("amount must be a positive number of minor units")
	ErrUnknownMember = errors.New("user is not a member of the team")
	ErrSelfRequest   = errors.New("cannot send a friend request to yourself")
	ErrEmptyContent  = errors.New("message content must not be empty")

	// Authorization: the actor is known but not allowed to act.
	ErrUnauthorizedActor = errors.New("actor is not authorized for this team action")
	ErrForbidden         = errors.New("actor does not own this resource")

	// State conflicts: the mutation would violate an invariant; original
	// state is preserved.
	ErrAlreadyResolved   = errors.New("request has already been resolved")
	ErrDuplicateRequest  = errors.New("an active relationship already exists for this pair")
	ErrInsufficientFunds = errors.New("member balance is insufficient for this contribution")
	ErrNegativeBalance   = errors.New("transaction would drive the wallet balance below zero")

	ErrNotFound = errors.New("resource not found")
)
