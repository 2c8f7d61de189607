package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"oneof":    "must be one of [%s]",
	"datetime": "must be a valid date",
	"url":      "must be a valid URL",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"gt":       true,
	"gte":      true,
	"oneof":    true,
	"datetime": true,
}

// Error messages for clients
const (
	ErrClientNotAuthorized                 = "unauthorized access"
	ErrClientForbidden                     = "forbidden access"
	ErrClientCannotProcessRequest          = "cannot process request"
	ErrClientSomethingWrongWithApplication = "something went wrong with the application"
	ErrClientServerLongRespond             = "server takes too long to respond"
)

// Error messages for developers
const (
	ErrDevInvalidInput           = "invalid input"
	ErrDevValidationFailed       = "request validation failed"
	ErrDevCannotParseJSON        = "failed to parse JSON payload"
	ErrDevServerProcess          = "server failed to process the request"
	ErrDevServerDeadlineExceeded = "request deadline exceeded"

	ErrDevAuthTokenMissing          = "authorization header is missing"
	ErrDevAuthTokenInvalid          = "auth token is invalid"
	ErrDevAuthTokenInvalidOrExpired = "auth token is invalid or expired"
	ErrDevAuthSigningMethod         = "unexpected token signing method"
	ErrDevAuthGenerateToken         = "failed to generate auth token"
	ErrDevAuthUnknownPrincipal      = "token principal has no user record"
	ErrDevAuthNotAdmin              = "principal role does not allow this operation"
	ErrDevAuthPatientMismatch       = "claimed email does not match requested patient"
	ErrDevAuthNotOwnerNorAdmin      = "principal is neither booking owner nor admin"

	ErrDevDBFailedToFindDocument     = "database failed to find document"
	ErrDevDBFailedToInsertDocument   = "database failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "database failed to update document"
	ErrDevDBFailedToDeleteDocument   = "database failed to delete document"
	ErrDevDBFailedToIterateDocuments = "database failed to iterate documents"
	ErrDevDBStringNotObjectID        = "given string is not a valid object id"

	ErrDevRedisGetData    = "redis failed to get data"
	ErrDevRedisSetData    = "redis failed to set data"
	ErrDevRedisDeleteData = "redis failed to delete data"

	ErrDevPaymentGatewayCreateIntent  = "payment gateway failed to create payment intent"
	ErrDevPaymentGatewayDecodeRespond = "failed to decode payment gateway response"
)
