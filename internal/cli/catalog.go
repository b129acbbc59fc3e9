package cli

import (
	"fmt"

	"github.com/yigit/enrollment/internal/app/models"
	"github.com/yigit/enrollment/internal/pkg/apperrors"
)

// Menu choices
const (
	ChoiceTheory = 1
	ChoiceLab    = 2
)

// Catalog maps menu choices to offerings
type Catalog struct {
	Theory models.CourseOffering
	Lab    models.CourseOffering
}

// NewCatalog builds the two-entry catalog shown in the menu
func NewCatalog(theoryCode string, theoryFeePerCredit float64, labCode string) Catalog {
	return Catalog{
		Theory: models.NewTheoryOffering(theoryCode, theoryFeePerCredit),
		Lab:    models.NewLabOffering(labCode),
	}
}

// Select returns the offering for choice or an ErrInvalidCourseChoice error.
func (c Catalog) Select(choice int) (models.CourseOffering, error) {
	switch choice {
	case ChoiceTheory:
		return c.Theory, nil
	case ChoiceLab:
		return c.Lab, nil
	default:
		return models.CourseOffering{}, apperrors.NewInvalidCourseChoiceError(fmt.Sprintf("course choice %d is not offered", choice))
	}
}

// menu renders the course type prompt
func (c Catalog) menu() string {
	return fmt.Sprintf("\nChoose Course Type:\n"+
		"1. Theory Course (Rs %s per credit)\n"+
		"2. Lab Course (Rs %d per credit + lab fee)\n",
		formatRate(c.Theory.FeePerCredit), models.LabFeePerCredit)
}

func formatRate(rate float64) string {
	if rate == float64(int64(rate)) {
		return fmt.Sprintf("%d", int64(rate))
	}
	return models.FormatFee(rate)
}
