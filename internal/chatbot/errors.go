package chatbot

import "errors"

var (
	ErrInvalidTable   = errors.New("invalid intent table")
	ErrEmptyFallback  = errors.New("intent table has no fallback")
	ErrEmptyResponses = errors.New("intent table has no responses")
	ErrEmptyResponse  = errors.New("intent table has an empty key or response")
	ErrMissingEnglish = errors.New("english intent table is required")
	ErrTableNotFound  = errors.New("no intent table for language")

	ErrSessionNotFound = errors.New("chat session not found")
	ErrEmptyMessage    = errors.New("message is empty")
)
