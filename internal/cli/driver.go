package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/yigit/enrollment/internal/app/models"
	"github.com/yigit/enrollment/internal/app/services"
	"github.com/yigit/enrollment/internal/pkg/apperrors"
	"github.com/yigit/enrollment/internal/pkg/logger"
)

// Outcome summarizes how an interactive session ended
type Outcome string

// Outcome values
const (
	OutcomeEnrolled       Outcome = "enrolled"
	OutcomeInvalidChoice  Outcome = "invalid_choice"
	OutcomeInvalidCredits Outcome = "invalid_credits"
	OutcomeUnexpected     Outcome = "unexpected_error"
)

const banner = "===== UNIVERSITY COURSE MANAGEMENT SYSTEM ====="

// Driver runs one interactive enrollment session
type Driver struct {
	in      *InputReader
	out     io.Writer
	svc     services.EnrollmentService
	catalog Catalog
	logPath string
}

// NewDriver creates a Driver. logPath is only used in the confirmation message.
func NewDriver(in *InputReader, out io.Writer, svc services.EnrollmentService, catalog Catalog, logPath string) *Driver {
	return &Driver{
		in:      in,
		out:     out,
		svc:     svc,
		catalog: catalog,
		logPath: logPath,
	}
}

// Run prompts for the enrollment, performs it and prints the result. Every
// failure is reported as text; the input is closed on return.
func (d *Driver) Run(ctx context.Context) (outcome Outcome) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Msg("Enrollment session panicked")
			fmt.Fprintln(d.out, "Unexpected error!")
			outcome = OutcomeUnexpected
		}
		if err := d.in.Close(); err != nil {
			logger.Warn().Err(err).Msg("Failed to close input")
		}
	}()

	outcome, err := d.session(ctx)
	switch {
	case err == nil:
	case apperrors.Is(err, apperrors.ErrInvalidCreditHours):
		fmt.Fprintf(d.out, "Error: %s\n", apperrors.Message(err))
	case apperrors.Is(err, apperrors.ErrInvalidCourseChoice):
		logger.Debug().Err(err).Msg("Course choice rejected")
		fmt.Fprintln(d.out, "Invalid course choice!")
	default:
		logger.Debug().Err(err).Msg("Enrollment session failed")
		fmt.Fprintln(d.out, "Unexpected error!")
	}

	logger.Debug().Str("outcome", string(outcome)).Msg("Enrollment session finished")
	return outcome
}

func (d *Driver) session(ctx context.Context) (Outcome, error) {
	fmt.Fprintln(d.out, banner)
	fmt.Fprint(d.out, "Enter Student Name: ")
	name, err := d.in.NextLine()
	if err != nil {
		return OutcomeUnexpected, err
	}

	fmt.Fprint(d.out, d.catalog.menu())
	fmt.Fprint(d.out, "Enter choice: ")
	choice, err := d.in.NextInt()
	if err != nil {
		return OutcomeUnexpected, err
	}

	fmt.Fprint(d.out, "Enter Credit Hours: ")
	credits, err := d.in.NextInt()
	if err != nil {
		return OutcomeUnexpected, err
	}

	offering, err := d.catalog.Select(choice)
	if err != nil {
		return OutcomeInvalidChoice, err
	}

	record, err := d.svc.Enroll(ctx, name, credits, offering)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrInvalidCreditHours) {
			return OutcomeInvalidCredits, err
		}
		return OutcomeUnexpected, err
	}

	d.printReport(record)
	fmt.Fprintf(d.out, "\nEnrollment saved in %s\n", d.logPath)
	return OutcomeEnrolled, nil
}

func (d *Driver) printReport(r *models.EnrollmentRecord) {
	fmt.Fprintln(d.out, "\n===== ENROLLMENT DETAILS =====")
	fmt.Fprintf(d.out, "Student Name: %s\n", r.StudentName)
	fmt.Fprintf(d.out, "Course Code: %s\n", r.CourseCode)
	fmt.Fprintf(d.out, "Credits: %d\n", r.CreditHours)
	fmt.Fprintf(d.out, "Total Fee: Rs %s\n", models.FormatFee(r.TotalFee))
}

// PrintHistory writes every stored enrollment line to out.
func PrintHistory(out io.Writer, lines []string) {
	if len(lines) == 0 {
		fmt.Fprintln(out, "No enrollments recorded.")
		return
	}
	for _, line := range lines {
		fmt.Fprintln(out, line)
	}
}
