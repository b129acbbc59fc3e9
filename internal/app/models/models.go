package models

// Variant defines how an offering prices its credit hours
type Variant string

// Variant constants
const (
	VariantTheory Variant = "THEORY"
	VariantLab    Variant = "LAB"
)

// Lab pricing is fixed and does not consult the offering's FeePerCredit.
const (
	LabFeePerCredit = 1500
	LabSurcharge    = 1000
)
