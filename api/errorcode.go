package api

import "github.com/communityaid/communityaid-api/store"

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1001: "invalid authorization format",
		1003: "invalid token",
		1004: "invalid credentials",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: store.ErrUserTaken.Error(),
		1101: "account not found",
		1103: "the account has been blocked",
		1105: "operation not allowed for this role",

		1200: store.ErrRequestNotExist.Error(),
		1201: store.ErrRequestTaken.Error(),
		1202: store.ErrNotAssignedHelper.Error(),
		1203: store.ErrInvalidTransition.Error(),

		1300: store.ErrReportNotExist.Error(),
		1301: "invalid report status",
		1302: "invalid issue type",

		1400: store.ErrOTPInvalid.Error(),

		1500: "not a participant of this request",
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)
	errorInvalidCredentials         = errorJSON(1004)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorAccountTaken      = errorJSON(1100)
	errorAccountNotFound   = errorJSON(1101)
	errorAccountBlocked    = errorJSON(1103)
	errorRoleNotAllowed    = errorJSON(1105)

	errorRequestNotExist   = errorJSON(1200)
	errorRequestTaken      = errorJSON(1201)
	errorNotAssignedHelper = errorJSON(1202)
	errorInvalidTransition = errorJSON(1203)

	errorReportNotExist     = errorJSON(1300)
	errorInvalidReportState = errorJSON(1301)
	errorInvalidIssueType   = errorJSON(1302)

	errorOTPInvalid = errorJSON(1400)

	errorNotChatParticipant = errorJSON(1500)
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
