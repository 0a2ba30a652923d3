package postgresql

import (
	"fmt"

	"github.com/kurochkinivan/promo_cards/internal/domain"
)

func createQueryError(err error) error {
	return fmt.Errorf("failed to create query: %w", err)
}

func executeQueryError(err error) error {
	return fmt.Errorf("failed to execute query: %w", err)
}

func collectRowsError(err error) error {
	return fmt.Errorf("failed to collect rows: %w", err)
}

func notFoundError(what string) error {
	return fmt.Errorf("%w: %s", domain.ErrNotFound, what)
}
