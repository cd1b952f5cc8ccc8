package response

const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Something went wrong"
	MessageTooManyRequests  = "Too many requests"
	MessageUnauthorized     = "Unauthorized"
	ValidationErrorCode     = 1
	UnauthorizedCode        = 401
	TooManyRequestsCode     = 429
	InternalServerErrorCode = 500
)
