package models

// FeeRule computes the total fee of an offering for a number of credit hours.
type FeeRule func(o CourseOffering, creditHours int) float64

var feeRules = map[Variant]FeeRule{
	VariantTheory: func(o CourseOffering, creditHours int) float64 {
		return o.FeePerCredit * float64(creditHours)
	},
	VariantLab: func(_ CourseOffering, creditHours int) float64 {
		return float64(LabFeePerCredit*creditHours + LabSurcharge)
	},
}

// CourseOffering represents a course a student can enroll in, together with
// the fee rule of its variant. Values are immutable once constructed.
type CourseOffering struct {
	Code         string  `json:"code"`
	FeePerCredit float64 `json:"feePerCredit"`
	Variant      Variant `json:"variant"`
}

// NewTheoryOffering creates a theory course charged per credit hour.
func NewTheoryOffering(code string, feePerCredit float64) CourseOffering {
	return CourseOffering{Code: code, FeePerCredit: feePerCredit, Variant: VariantTheory}
}

// NewLabOffering creates a lab course. FeePerCredit is recorded as 1500 but
// CalculateFee always applies the fixed lab formula.
func NewLabOffering(code string) CourseOffering {
	return CourseOffering{Code: code, FeePerCredit: LabFeePerCredit, Variant: VariantLab}
}

// CalculateFee returns the total fee for creditHours. An unknown variant is
// priced like a theory course.
func (o CourseOffering) CalculateFee(creditHours int) float64 {
	rule, ok := feeRules[o.Variant]
	if !ok {
		rule = feeRules[VariantTheory]
	}
	return rule(o, creditHours)
}
