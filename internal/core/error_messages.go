package core

// error_messages.go maps technical errors to user-friendly messages.
//
// # Error Codes Reference
//
// When users encounter errors, they can quote the error code to support
// staff for faster diagnosis. Codes are grouped by category.
//
// # Database Errors (DB001-DB099)
//
//	DB001 - Report data unavailable: a reporting table or column is missing
//	        Patterns: "does not exist"
//	DB002 - Access denied: the service account cannot read report data
//	        Patterns: "permission denied"
//	DB003 - Connection refused: Unable to connect to database
//	        Patterns: "connection refused"
//	DB004 - Connection reset: Database connection was interrupted
//	        Patterns: "connection reset"
//	DB005 - Timeout: Operation timed out
//	        Patterns: "timeout"
//	DB006 - Deadlock: Database was busy with conflicting operations
//	        Patterns: "deadlock"
//	DB007 - Pool exhausted: Database has no free connections
//	        Patterns: "too many clients", "remaining connection slots"
//
// # View Errors (VIEW001-VIEW099)
//
//	VIEW001 - View not found: the requested list view does not exist
//	          Patterns: "view not found"
//	VIEW002 - Catalog column: a catalog override names an unknown column
//	          Patterns: "has no column"
//
// # Session Errors (SESS001-SESS099)
//
//	SESS001 - Session expired: the table session is unknown or expired
//	          Patterns: "session not found"
//	SESS002 - Too many sessions: the server is at its session limit
//	          Patterns: "too many sessions"
//	SESS003 - System busy: too many data loads in progress
//	          Patterns: "too many concurrent fetches"
//
// # Request Errors (REQ001-REQ099)
//
//	REQ001 - Invalid year
//	         Patterns: "invalid year"
//	REQ002 - Invalid number parameter (page, page size)
//	         Patterns: "invalid page"
//	REQ003 - Invalid sort direction
//	         Patterns: "invalid sort direction"
//	REQ004 - Request cancelled
//	         Patterns: "context canceled"
//	REQ005 - Request timeout
//	         Patterns: "context deadline exceeded"
//
// # Rate Limiting (RATE001-RATE099)
//
//	RATE001 - Rate limited: Too many requests
//	          Patterns: "rate limit"
//
// # Default Error (ERR000)
//
// Fallback when no specific pattern matches. Support staff should check
// application logs for the original technical error.
//
// # Pattern Matching
//
// Error patterns are matched case-insensitively using strings.Contains.
// The first matching pattern wins, so more specific patterns should be
// defined before general ones.

import (
	"fmt"
	"strings"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string `json:"message"` // What happened (user-friendly)
	Action  string `json:"action"`  // What to do about it
	Code    string `json:"code"`    // Error code for support reference
}

// errorPattern defines a pattern to match and its corresponding user message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

// errorPatterns maps technical error patterns (case-insensitive) to user messages.
// The first matching pattern wins, so order matters.
var errorPatterns = []errorPattern{
	// =========================================================================
	// Application Errors
	// Matched first: their messages can wrap database text.
	// =========================================================================
	{
		pattern: "view not found",
		msg: UserMessage{
			Message: "The requested list does not exist",
			Action:  "Choose a list from the navigation menu",
			Code:    "VIEW001",
		},
	},
	{
		pattern: "has no column",
		msg: UserMessage{
			Message: "The view catalog refers to an unknown column",
			Action:  "Fix the column name in the view catalog file",
			Code:    "VIEW002",
		},
	},
	{
		pattern: "session not found",
		msg: UserMessage{
			Message: "This table has expired",
			Action:  "Reload the page to start a new session",
			Code:    "SESS001",
		},
	},
	{
		pattern: "too many sessions",
		msg: UserMessage{
			Message: "Too many open tables",
			Action:  "Close unused tabs or try again in a few minutes",
			Code:    "SESS002",
		},
	},
	{
		pattern: "too many concurrent fetches",
		msg: UserMessage{
			Message: "The system is busy loading data",
			Action:  "Please wait a moment and try again",
			Code:    "SESS003",
		},
	},
	{
		pattern: "invalid year",
		msg: UserMessage{
			Message: "The selected year is not valid",
			Action:  "Pick a four-digit year",
			Code:    "REQ001",
		},
	},
	{
		pattern: "invalid page",
		msg: UserMessage{
			Message: "The page number or page size is not valid",
			Action:  "Use the pagination controls to navigate",
			Code:    "REQ002",
		},
	},
	{
		pattern: "invalid sort direction",
		msg: UserMessage{
			Message: "The sort direction is not valid",
			Action:  "Sort ascending or descending",
			Code:    "REQ003",
		},
	},
	{
		pattern: "rate limit",
		msg: UserMessage{
			Message: "Too many requests",
			Action:  "Please wait a moment before trying again",
			Code:    "RATE001",
		},
	},

	// =========================================================================
	// Database Errors (DB001-DB007)
	// =========================================================================
	{
		pattern: "does not exist",
		msg: UserMessage{
			Message: "Report data is not available",
			Action:  "Contact support; the reporting schema may be out of date",
			Code:    "DB001",
		},
	},
	{
		pattern: "permission denied",
		msg: UserMessage{
			Message: "Access to report data was denied",
			Action:  "Contact support to check database permissions",
			Code:    "DB002",
		},
	},
	{
		pattern: "connection refused",
		msg: UserMessage{
			Message: "Unable to connect to database",
			Action:  "Please try again in a few moments",
			Code:    "DB003",
		},
	},
	{
		pattern: "connection reset",
		msg: UserMessage{
			Message: "Database connection was interrupted",
			Action:  "Please try again",
			Code:    "DB004",
		},
	},
	{
		pattern: "timeout",
		msg: UserMessage{
			Message: "Operation timed out",
			Action:  "Narrow the year or vessel selection and try again",
			Code:    "DB005",
		},
	},
	{
		pattern: "deadlock",
		msg: UserMessage{
			Message: "Database was busy with conflicting operations",
			Action:  "Please try again",
			Code:    "DB006",
		},
	},
	{
		pattern: "too many clients",
		msg: UserMessage{
			Message: "Database has no free connections",
			Action:  "Please try again in a few moments",
			Code:    "DB007",
		},
	},
	{
		pattern: "remaining connection slots",
		msg: UserMessage{
			Message: "Database has no free connections",
			Action:  "Please try again in a few moments",
			Code:    "DB007",
		},
	},

	// =========================================================================
	// Request Lifecycle (REQ004-REQ005)
	// =========================================================================
	{
		pattern: "context canceled",
		msg: UserMessage{
			Message: "Request was cancelled",
			Action:  "Please try again",
			Code:    "REQ004",
		},
	},
	{
		pattern: "context deadline exceeded",
		msg: UserMessage{
			Message: "Request timed out",
			Action:  "Narrow the year or vessel selection and try again",
			Code:    "REQ005",
		},
	},
}

// defaultMessage is returned when no pattern matches (ERR000).
// This is the fallback for unexpected errors. Support staff should check
// application logs for the original technical error when users report ERR000.
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or contact support",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
// It searches through known error patterns (case-insensitive) and returns
// the first match. If no pattern matches, a generic fallback message with
// code ERR000 is returned.
//
// Example:
//
//	msg := MapError(ErrSessionNotFound)
//	// msg.Code == "SESS001"
//	// msg.Message == "This table has expired"
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	errStr := strings.ToLower(err.Error())

	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
//
// Example output: "This table has expired (Code: SESS001). Reload the page to start a new session"
//
// This is the primary function for displaying errors to end users.
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsUserFacing checks if an error matches a known pattern and should be shown to users.
// Returns true if the error matches a specific pattern (not the generic ERR000 fallback).
// Use this to decide whether to show the raw error or the mapped user message.
//
// Example:
//
//	if IsUserFacing(err) {
//	    showToUser(FormatUserError(err))
//	} else {
//	    log.Error(err) // Log technical error
//	    showToUser("An error occurred. Please try again.")
//	}
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	msg := MapError(err)
	return msg.Code != defaultMessage.Code
}

// UserError wraps a technical error with a user-friendly message.
// The original error is preserved for logging while providing a clean message for users.
type UserError struct {
	Technical error       // Original technical error for logging
	User      UserMessage // User-friendly message for display
}

func (e *UserError) Error() string {
	return e.User.Message
}

func (e *UserError) Unwrap() error {
	return e.Technical
}

// NewUserError creates a UserError by mapping a technical error to a user-friendly message.
// The returned UserError preserves the original technical error for logging via Unwrap(),
// while providing a clean user message via Error().
//
// Returns nil if err is nil.
//
// Example:
//
//	ue := NewUserError(err)
//	slog.Error("load failed", "error", ue.Technical)
//	fmt.Println(ue.Error())   // "Unable to connect to database"
//	fmt.Println(ue.User.Code) // "DB003"
func NewUserError(err error) *UserError {
	if err == nil {
		return nil
	}
	return &UserError{
		Technical: err,
		User:      MapError(err),
	}
}
