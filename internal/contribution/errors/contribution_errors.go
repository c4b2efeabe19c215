package contributionerrors

import (
	"net/http"

	"github.com/DeboraBSilva/Punchclock/internal/shared/apperror"
)

var (
	ErrContributionNotFound = apperror.New(
		apperror.CodeNotFound,
		"Contribution not found",
		http.StatusNotFound,
	)

	ErrLinkRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Contribution link is required",
		http.StatusBadRequest,
	)

	ErrDuplicateLink = apperror.New(
		apperror.CodeConflict,
		"Contribution with the same link already exists",
		http.StatusConflict,
	)

	ErrInvalidStateTransition = apperror.New(
		apperror.CodeInvalidState,
		"Contribution has already been reviewed",
		http.StatusUnprocessableEntity,
	)

	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid company ID",
		http.StatusBadRequest,
	)

	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid actor ID",
		http.StatusBadRequest,
	)

	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid user ID",
		http.StatusBadRequest,
	)
)
