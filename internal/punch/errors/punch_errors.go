package puncherrors

import (
	"net/http"

	"github.com/DeboraBSilva/Punchclock/internal/shared/apperror"
)

var (
	ErrPunchNotFound = apperror.New(
		apperror.CodeNotFound,
		"Punch not found",
		http.StatusNotFound,
	)

	ErrInvalidDayFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid day, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)

	ErrInvalidTimeFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid clock time, expected HH:MM",
		http.StatusBadRequest,
	)

	ErrInvalidTimeRange = apperror.New(
		apperror.CodeInvalidInput,
		"Punch must end after it starts",
		http.StatusBadRequest,
	)

	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid company ID",
		http.StatusBadRequest,
	)

	ErrInvalidProjectID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid project ID",
		http.StatusBadRequest,
	)

	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid user ID",
		http.StatusBadRequest,
	)
)
