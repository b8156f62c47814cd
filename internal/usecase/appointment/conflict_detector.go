package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
)

// ConflictDetector responde se um agendamento ativo já ocupa
// (doctor, date, time). É uma foto do store, não um lock: quem
// garante atomicidade é a escrita condicional do repositório.
type ConflictDetector struct {
	repo domain.Repository
}

func NewConflictDetector(repo domain.Repository) *ConflictDetector {
	return &ConflictDetector{repo: repo}
}

// HasConflict ignora cancelados; excludeID permite que um update
// cheque conflito contra todos menos ele mesmo.
func (d *ConflictDetector) HasConflict(
	ctx context.Context,
	doctorID string,
	date string,
	timeOfDay string,
	excludeID string,
) (bool, error) {

	count, err := d.repo.CountActiveAt(ctx, doctorID, date, timeOfDay, excludeID)
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
