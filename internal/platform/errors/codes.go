// Package errors provides structured domain errors with localized messages.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"
	// CodeNotFound reports a missing resource.
	CodeNotFound Code = "NOT_FOUND"

	// Action routing errors
	CodeActionTypeRequired   Code = "ACTION_TYPE_REQUIRED"
	CodeActionTypeUnknown    Code = "ACTION_TYPE_UNKNOWN"
	CodeActionPayloadInvalid Code = "ACTION_PAYLOAD_INVALID"

	// Store lifecycle errors
	CodeStoreClosed Code = "STORE_CLOSED"

	// Form validation errors
	CodeValidationNameRequired        Code = "VALIDATION_NAME_REQUIRED"
	CodeValidationEmailRequired       Code = "VALIDATION_EMAIL_REQUIRED"
	CodeValidationEmailInvalid        Code = "VALIDATION_EMAIL_INVALID"
	CodeValidationPhoneRequired       Code = "VALIDATION_PHONE_REQUIRED"
	CodeValidationPhoneInvalid        Code = "VALIDATION_PHONE_INVALID"
	CodeValidationPasswordRequired    Code = "VALIDATION_PASSWORD_REQUIRED"
	CodeValidationPasswordTooShort    Code = "VALIDATION_PASSWORD_TOO_SHORT"
	CodeValidationPasswordMismatch    Code = "VALIDATION_PASSWORD_MISMATCH"
	CodeValidationDateOfBirthRequired Code = "VALIDATION_DATE_OF_BIRTH_REQUIRED"
	CodeValidationDueDateRequired     Code = "VALIDATION_DUE_DATE_REQUIRED"
	CodeValidationDueDateInvalid      Code = "VALIDATION_DUE_DATE_INVALID"
	CodeValidationGlassesInvalid      Code = "VALIDATION_GLASSES_INVALID"

	// Session grant errors
	CodeSessionGrantMissing  Code = "SESSION_GRANT_MISSING"
	CodeSessionGrantInvalid  Code = "SESSION_GRANT_INVALID"
	CodeSessionGrantExpired  Code = "SESSION_GRANT_EXPIRED"
	CodeSessionGrantMismatch Code = "SESSION_GRANT_MISMATCH"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - malformed input the caller must fix
	case CodeActionTypeRequired,
		CodeActionTypeUnknown,
		CodeActionPayloadInvalid,
		CodeValidationNameRequired,
		CodeValidationEmailRequired,
		CodeValidationEmailInvalid,
		CodeValidationPhoneRequired,
		CodeValidationPhoneInvalid,
		CodeValidationPasswordRequired,
		CodeValidationPasswordTooShort,
		CodeValidationPasswordMismatch,
		CodeValidationDateOfBirthRequired,
		CodeValidationDueDateRequired,
		CodeValidationDueDateInvalid,
		CodeValidationGlassesInvalid:
		return codes.InvalidArgument

	// Unauthenticated - the caller could not prove a session
	case CodeSessionGrantMissing,
		CodeSessionGrantInvalid,
		CodeSessionGrantExpired:
		return codes.Unauthenticated

	// PermissionDenied - a valid grant for someone else
	case CodeSessionGrantMismatch:
		return codes.PermissionDenied

	case CodeStoreClosed:
		return codes.Unavailable

	case CodeNotFound:
		return codes.NotFound

	default:
		return codes.Internal
	}
}
