package repositories

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/yigit/enrollment/internal/app/models"
	"github.com/yigit/enrollment/internal/pkg/apperrors"
	"github.com/yigit/enrollment/internal/pkg/logger"
)

// EnrollmentRepository appends enrollment records to a plain text log,
// one line per record. There is no locking; a single writer is assumed.
type EnrollmentRepository struct {
	path string
}

// NewEnrollmentRepository creates a new EnrollmentRepository writing to path
func NewEnrollmentRepository(path string) *EnrollmentRepository {
	return &EnrollmentRepository{path: path}
}

// Path returns the log file location
func (r *EnrollmentRepository) Path() string {
	return r.path
}

// Append writes record as a single line. The file handle is opened and closed
// on every call.
func (r *EnrollmentRepository) Append(ctx context.Context, record *models.EnrollmentRecord) (err error) {
	if err := ctx.Err(); err != nil {
		return apperrors.NewPersistenceError(err, "enrollment append cancelled")
	}

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		logger.Error().Err(err).Str("path", r.path).Msg("Failed to open enrollment log")
		return apperrors.NewPersistenceError(err, fmt.Sprintf("failed to open %s", r.path))
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			logger.Error().Err(cerr).Str("path", r.path).Msg("Failed to close enrollment log")
			err = apperrors.NewPersistenceError(cerr, fmt.Sprintf("failed to close %s", r.path))
		}
	}()

	w := bufio.NewWriter(f)
	if _, err := w.WriteString(record.LogLine() + "\n"); err != nil {
		return apperrors.NewPersistenceError(err, fmt.Sprintf("failed to write %s", r.path))
	}
	if err := w.Flush(); err != nil {
		logger.Error().Err(err).Str("path", r.path).Msg("Failed to flush enrollment log")
		return apperrors.NewPersistenceError(err, fmt.Sprintf("failed to write %s", r.path))
	}

	logger.Debug().
		Str("id", record.ID.String()).
		Str("path", r.path).
		Str("course", record.CourseCode).
		Msg("Enrollment record appended")
	return nil
}

// ReadAll returns every stored line in file order. A missing log yields an
// empty slice.
func (r *EnrollmentRepository) ReadAll(ctx context.Context) ([]string, error) {
	f, err := os.Open(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, apperrors.NewPersistenceError(err, fmt.Sprintf("failed to open %s", r.path))
	}
	defer f.Close()

	lines := []string{}
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, apperrors.NewPersistenceError(err, fmt.Sprintf("failed to read %s", r.path))
	}
	return lines, nil
}
