package api

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	ErrInternalErr        = "INTERNAL_ERROR"
	ErrValidationErr      = "VALIDATION_ERROR"
	ErrBadRequest         = "BAD_REQUEST"
	ErrCodeNotFound       = "NOT_FOUND"
	ErrCodeTeamExists     = "TEAM_EXISTS"
	ErrCodeConflict       = "CONFLICT"
	ErrCodeInviteAnswered = "INVITE_RESPONDED"
	ErrCodeUnauthorized   = "UNAUTHORIZED"
	ErrCodeForbidden      = "FORBIDDEN"
)

type CreateTeamResponse struct {
	TeamID string `json:"team_id"`
}

type TeamResponse struct {
	Team TeamSchema `json:"team"`
}

type TeamDetailsResponse struct {
	Team TeamDetailsSchema `json:"team"`
}

type TeamsResponse struct {
	Teams []TeamDetailsSchema `json:"teams"`
}

type InvitesResponse struct {
	Invites []InviteSchema `json:"invites"`
}

type RespondInviteResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
}

type UsersResponse struct {
	Users []UserPublic `json:"users"`
}

type UserResponse struct {
	User UserSchema `json:"user"`
}

type UserListResponse struct {
	Users []UserSchema `json:"users"`
}

type EventResponse struct {
	Event EventSchema `json:"event"`
}

type EventsResponse struct {
	Events []EventSchema `json:"events"`
}

type HomeEventsResponse struct {
	Events []HomeEvent `json:"events"`
}

type TicketResponse struct {
	Ticket TicketSchema `json:"ticket"`
}

type TicketsResponse struct {
	Tickets []TicketSchema `json:"tickets"`
}

type TicketDetailsResponse struct {
	Tickets []TicketDetailsSchema `json:"tickets"`
}

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func Error(code string, msg string) ErrorResponse {
	return ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: msg,
		},
	}
}

func InternalError() ErrorResponse {
	return ErrorResponse{
		Error: ErrorDetail{
			Code:    ErrInternalErr,
			Message: "internal server error",
		},
	}
}

func ValidationError(errs validator.ValidationErrors) ErrorResponse {
	var errMsgs []string
	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errMsgs = append(errMsgs, fmt.Sprintf("field '%s' is required", err.Field()))
		case "max":
			errMsgs = append(
				errMsgs,
				fmt.Sprintf("field '%s' must be no more than %s", err.Field(), err.Param()),
			)
		case "email":
			errMsgs = append(errMsgs, fmt.Sprintf("field '%s' must be a valid email", err.Field()))
		case "oneof":
			errMsgs = append(errMsgs, fmt.Sprintf("field '%s' must be one of: %s", err.Field(), err.Param()))
		default:
			errMsgs = append(errMsgs, fmt.Sprintf("field '%s' is not valid", err.Field()))
		}
	}

	return ErrorResponse{
		Error: ErrorDetail{
			Code:    ErrValidationErr,
			Message: strings.Join(errMsgs, ", "),
		},
	}
}
