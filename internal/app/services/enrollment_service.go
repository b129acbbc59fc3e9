package services

import (
	"context"
	"fmt"
	"io"

	"github.com/yigit/enrollment/internal/app/models"
	"github.com/yigit/enrollment/internal/pkg/apperrors"
	"github.com/yigit/enrollment/internal/pkg/logger"
	"github.com/yigit/enrollment/internal/pkg/validation"
)

// MsgCreditHoursNotPositive is the user-facing message for rejected credit hours
const MsgCreditHoursNotPositive = "Credit hours must be positive!"

const msgFileError = "File error!"

// RecordAppender persists enrollment records
type RecordAppender interface {
	Append(ctx context.Context, record *models.EnrollmentRecord) error
}

// EnrollmentNotifier announces an enrollment out of band
type EnrollmentNotifier interface {
	Notify(ctx context.Context) <-chan struct{}
}

// EnrollmentService defines the interface for enrolling students
type EnrollmentService interface {
	Enroll(ctx context.Context, studentName string, creditHours int, offering models.CourseOffering) (*models.EnrollmentRecord, error)
}

// enrollmentServiceImpl implements the EnrollmentService interface
type enrollmentServiceImpl struct {
	store    RecordAppender
	notifier EnrollmentNotifier
	out      io.Writer
}

// NewEnrollmentService creates a new enrollment service instance. out
// receives user-facing messages such as persistence failures.
func NewEnrollmentService(store RecordAppender, notifier EnrollmentNotifier, out io.Writer) EnrollmentService {
	return &enrollmentServiceImpl{
		store:    store,
		notifier: notifier,
		out:      out,
	}
}

// Enroll validates the request, prices it, fires the notifier and appends the
// record. A failed append is reported on out but does not fail the enrollment.
func (s *enrollmentServiceImpl) Enroll(ctx context.Context, studentName string, creditHours int, offering models.CourseOffering) (*models.EnrollmentRecord, error) {
	req := models.EnrollmentRequest{StudentName: studentName, CreditHours: creditHours}
	if err := validateRequest(req); err != nil {
		logger.Debug().Err(err).Int("creditHours", creditHours).Msg("Enrollment rejected")
		return nil, err
	}

	totalFee := offering.CalculateFee(req.CreditHours)
	record := models.NewEnrollmentRecord(req, offering, totalFee)

	// Not awaited.
	s.notifier.Notify(ctx)

	if err := s.store.Append(ctx, record); err != nil {
		logger.Error().Err(err).Str("id", record.ID.String()).Msg("Failed to persist enrollment record")
		fmt.Fprintln(s.out, msgFileError)
	}

	logger.Info().
		Str("id", record.ID.String()).
		Str("student", record.StudentName).
		Str("course", record.CourseCode).
		Int("credits", record.CreditHours).
		Float64("totalFee", record.TotalFee).
		Msg("Student enrolled")

	return record, nil
}

// validateRequest maps struct-tag failures onto enrollment error kinds
func validateRequest(req models.EnrollmentRequest) error {
	errs := validation.Struct(req)
	if len(errs) == 0 {
		return nil
	}
	for _, fe := range errs {
		if fe.Field == "CreditHours" {
			return apperrors.NewInvalidCreditHoursError(MsgCreditHoursNotPositive)
		}
	}
	return fmt.Errorf("%w: %s", apperrors.ErrValidationFailed, errs[0].Error())
}
