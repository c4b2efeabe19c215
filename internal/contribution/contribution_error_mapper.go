package contribution

import (
	"errors"
	"strings"

	contributionerrors "github.com/DeboraBSilva/Punchclock/internal/contribution/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return contributionerrors.ErrContributionNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_contributions_link" {
			return contributionerrors.ErrDuplicateLink
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_contributions_link") {
		return contributionerrors.ErrDuplicateLink
	}

	return err
}
