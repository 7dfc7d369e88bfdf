package api

import "github.com/community-aid/helpboard-api/store"

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1001: "invalid authorization format",
		1003: "invalid token",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1101: "account not found",
		1102: "this action is not available for your role",

		1200: store.ErrCannotRespond.Error(),
		1201: store.ErrNotResponder.Error(),
		1202: store.ErrNotOwner.Error(),
		1203: "invalid status transition",
		1204: store.ErrRatingNotAllowed.Error(),
		1205: store.ErrRatingOutOfRange.Error(),
		1206: "schedule not found",

		1300: "information not found",
		1301: store.ErrInformationExists.Error(),
		1302: store.ErrAgeOutOfRange.Error(),
		1303: store.ErrNameRequired.Error(),
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorAccountNotFound = errorJSON(1101)
	errorRoleNotAllowed  = errorJSON(1102)

	errorCannotRespond     = errorJSON(1200)
	errorNotResponder      = errorJSON(1201)
	errorNotOwner          = errorJSON(1202)
	errorInvalidTransition = errorJSON(1203)
	errorRatingNotAllowed  = errorJSON(1204)
	errorRatingOutOfRange  = errorJSON(1205)
	errorScheduleNotFound  = errorJSON(1206)

	errorInformationNotFound = errorJSON(1300)
	errorInformationExists   = errorJSON(1301)
	errorAgeOutOfRange       = errorJSON(1302)
	errorNameRequired        = errorJSON(1303)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
