// Package constants provides shared constant values used throughout the application.
//
// The httpcodes.go file defines HTTP-related constants such as response codes,
// headers, and content types. These constants keep the wire format of every
// endpoint consistent.
package constants

// HTTP Response Code Types define application-specific response codes.
// These codes accompany failure payloads next to the human-readable message.
const (
	// ResponseSuccess marks a successful write payload.
	ResponseSuccess = true

	// ResponseFailure marks a failure payload.
	ResponseFailure = false

	// CodeBadRequest indicates a malformed or invalid request.
	CodeBadRequest = "bad_request"

	// CodeNotFound indicates the requested resource does not exist.
	CodeNotFound = "not_found"

	// CodeConflict indicates the request conflicts with the current state of the data.
	CodeConflict = "conflict"

	// CodeInternalError indicates an unexpected server error.
	CodeInternalError = "internal_error"

	// CodeValidationError indicates request validation failed.
	CodeValidationError = "validation_error"

	// CodeServiceUnavailable indicates the database is unreachable.
	CodeServiceUnavailable = "service_unavailable"
)

// HTTP Header Names define common HTTP headers used in requests and responses.
const (
	// HeaderContentType specifies the media type of the resource.
	HeaderContentType = "Content-Type"

	// HeaderXRequestID contains a unique identifier for the HTTP request.
	HeaderXRequestID = "X-Request-ID"

	// HeaderOrigin carries the origin of a cross-site request.
	HeaderOrigin = "Origin"

	// HeaderXContentTypeOptions controls MIME type sniffing.
	HeaderXContentTypeOptions = "X-Content-Type-Options"

	// HeaderXFrameOptions controls whether the page can be displayed in a frame.
	HeaderXFrameOptions = "X-Frame-Options"

	// HeaderReferrerPolicy controls how much referrer information should be included with requests.
	HeaderReferrerPolicy = "Referrer-Policy"
)

// HTTP Content Types define media types used in the Content-Type header.
const (
	// ContentTypeJSON specifies the content is in JSON format.
	ContentTypeJSON = "application/json; charset=utf-8"
)

// Security Header Values define the values for security-related HTTP headers.
const (
	// FrameOptionsDeny prevents the page from being displayed in a frame.
	FrameOptionsDeny = "DENY"

	// ContentTypeOptionsNoSniff prevents MIME type sniffing.
	ContentTypeOptionsNoSniff = "nosniff"

	// ReferrerPolicyStrictOrigin restricts referrer information to origin only for cross-origin requests.
	ReferrerPolicyStrictOrigin = "strict-origin-when-cross-origin"
)

// CORS header names and values.
const (
	HeaderAccessControlAllowOrigin   = "Access-Control-Allow-Origin"
	HeaderAccessControlAllowMethods  = "Access-Control-Allow-Methods"
	HeaderAccessControlAllowHeaders  = "Access-Control-Allow-Headers"
	HeaderAccessControlMaxAge        = "Access-Control-Max-Age"
	HeaderAccessControlRequestMethod = "Access-Control-Request-Method"
	HeaderVary                       = "Vary"

	CORSAllowAllOrigins = "*"
	CORSAllowMethods    = "GET, POST, OPTIONS"
	CORSAllowHeaders    = "Accept, Content-Type, X-Request-ID"
)
