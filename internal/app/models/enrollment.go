package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EnrollmentRequest is the input of a single enrollment
type EnrollmentRequest struct {
	StudentName string `json:"studentName"`
	CreditHours int    `json:"creditHours" validate:"gt=0"`
}

// EnrollmentRecord is created once per successful enrollment and appended to
// the enrollment log. It is never mutated afterwards.
type EnrollmentRecord struct {
	ID          uuid.UUID `json:"id"` // Diagnostics only, not persisted
	StudentName string    `json:"studentName"`
	CourseCode  string    `json:"courseCode"`
	CreditHours int       `json:"creditHours"`
	TotalFee    float64   `json:"totalFee"`
	EnrolledAt  time.Time `json:"enrolledAt"` // Diagnostics only, not persisted
}

// NewEnrollmentRecord builds a record for req against offering.
func NewEnrollmentRecord(req EnrollmentRequest, offering CourseOffering, totalFee float64) *EnrollmentRecord {
	return &EnrollmentRecord{
		ID:          uuid.New(),
		StudentName: req.StudentName,
		CourseCode:  offering.Code,
		CreditHours: req.CreditHours,
		TotalFee:    totalFee,
		EnrolledAt:  time.Now(),
	}
}

// LogLine renders the record in the fixed enrollment log format, without a
// line terminator.
func (r *EnrollmentRecord) LogLine() string {
	return fmt.Sprintf("Student: %s, Course: %s, Credits: %d, Total Fee: Rs %s",
		r.StudentName, r.CourseCode, r.CreditHours, FormatFee(r.TotalFee))
}
