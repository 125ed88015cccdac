package models

// QCItemType enumerates inspected goods.
type QCItemType string

const (
	QCBibit    QCItemType = "bibit"
	QCPakan    QCItemType = "pakan"
	QCObat     QCItemType = "obat"
	QCLogistik QCItemType = "logistik"
)

// QCSamplingPlan is the sample size required for a received lot.
type QCSamplingPlan struct {
	ItemType    QCItemType `json:"itemType"`
	Quantity    int        `json:"quantity"`
	SampleSize  int        `json:"sampleSize"`
	Percentage  float64    `json:"percentage"`
	MinSample   int        `json:"minSample"`
	Recommended bool       `json:"recommended"`
}

// QCRecord holds what an inspector measured on a sample. Pointer fields are
// optional and only the checks whose inputs are present are applied.
type QCRecord struct {
	ItemType       QCItemType `json:"itemType"`
	SampleSize     int        `json:"sampleSize"`
	Mortality      *int       `json:"mortality,omitempty"`
	MeasuredSize   *float64   `json:"measuredSize,omitempty"`
	MeasuredWeight *float64   `json:"measuredWeight,omitempty"`
	ExpiryIssue    bool       `json:"expiryIssue"`
	PackagingIssue bool       `json:"packagingIssue"`
}

// PenaltyRates are percentage points charged per unit of excess.
type PenaltyRates struct {
	MortalityExcess float64 `json:"mortalityExcess"`
	SizeMismatch    float64 `json:"sizeMismatch"`
	WeightShortage  float64 `json:"weightShortage"`
}

// QCSpec is the contractual quality specification of an order.
type QCSpec struct {
	MortalityMax    float64      `json:"mortalityMax"`    // percent
	ExpectedSize    float64      `json:"expectedSize"`    // cm
	SizeTolerance   float64      `json:"sizeTolerance"`   // percent
	ExpectedWeight  float64      `json:"expectedWeight"`  // kg
	WeightTolerance float64      `json:"weightTolerance"` // percent
	Penalties       PenaltyRates `json:"penalties"`
}

// PenaltyResult is the monetary outcome of an inspection.
type PenaltyResult struct {
	HasPenalty        bool     `json:"hasPenalty"`
	PenaltyPercentage float64  `json:"penaltyPercentage"`
	PenaltyAmount     float64  `json:"penaltyAmount"`
	Reasons           []string `json:"reasons"`
}
