package models

// ExpenseType is the fixed category of an expense.
type ExpenseType string

// Expense categories.
const (
	ExpenseTypeFood          ExpenseType = "Food & Dining"
	ExpenseTypeTransport     ExpenseType = "Transportation"
	ExpenseTypeEntertainment ExpenseType = "Entertainment"
	ExpenseTypeShopping      ExpenseType = "Shopping"
	ExpenseTypeBills         ExpenseType = "Bills & Utilities"
	ExpenseTypeHealthcare    ExpenseType = "Healthcare"
	ExpenseTypeEducation     ExpenseType = "Education"
	ExpenseTypeTravel        ExpenseType = "Travel & Vacation"
	ExpenseTypePersonalCare  ExpenseType = "Personal Care"
	ExpenseTypeHomeGarden    ExpenseType = "Home & Garden"
	ExpenseTypeTechnology    ExpenseType = "Technology"
	ExpenseTypeInsurance     ExpenseType = "Insurance"
	ExpenseTypeBanking       ExpenseType = "Banking & Finance"
	ExpenseTypeGifts         ExpenseType = "Gifts & Donations"
	ExpenseTypeBusiness      ExpenseType = "Business"
	ExpenseTypePets          ExpenseType = "Pets"
	ExpenseTypeSports        ExpenseType = "Sports & Fitness"
	ExpenseTypeSubscriptions ExpenseType = "Subscriptions"
	ExpenseTypeMaintenance   ExpenseType = "Maintenance & Repairs"
	ExpenseTypeOther         ExpenseType = "Other"
)

// ExpenseTypes lists every category in display order. It is the single
// source consulted by request validation and by the model save hooks.
var ExpenseTypes = []ExpenseType{
	ExpenseTypeFood, ExpenseTypeTransport, ExpenseTypeEntertainment, ExpenseTypeShopping,
	ExpenseTypeBills, ExpenseTypeHealthcare, ExpenseTypeEducation, ExpenseTypeTravel,
	ExpenseTypePersonalCare, ExpenseTypeHomeGarden, ExpenseTypeTechnology, ExpenseTypeInsurance,
	ExpenseTypeBanking, ExpenseTypeGifts, ExpenseTypeBusiness, ExpenseTypePets,
	ExpenseTypeSports, ExpenseTypeSubscriptions, ExpenseTypeMaintenance, ExpenseTypeOther,
}

// Valid reports whether t is a known category.
func (t ExpenseType) Valid() bool { return contains(ExpenseTypes, t) }

// PaymentMethod is how an expense was paid.
type PaymentMethod string

// Payment methods.
const (
	PaymentMethodCash       PaymentMethod = "Cash"
	PaymentMethodCreditCard PaymentMethod = "Credit Card"
	PaymentMethodDebitCard  PaymentMethod = "Debit Card"
	PaymentMethodUPI        PaymentMethod = "UPI"
	PaymentMethodNetBanking PaymentMethod = "Net Banking"
	PaymentMethodCheque     PaymentMethod = "Cheque"
	PaymentMethodOther      PaymentMethod = "Other"
)

// PaymentMethods lists every payment method.
var PaymentMethods = []PaymentMethod{
	PaymentMethodCash, PaymentMethodCreditCard, PaymentMethodDebitCard, PaymentMethodUPI,
	PaymentMethodNetBanking, PaymentMethodCheque, PaymentMethodOther,
}

// Valid reports whether m is a known payment method.
func (m PaymentMethod) Valid() bool { return contains(PaymentMethods, m) }

// Direction tells whether money in an approval was lent or borrowed.
type Direction string

// Approval directions.
const (
	DirectionGiven Direction = "given"
	DirectionTaken Direction = "taken"
)

// Directions lists every approval direction.
var Directions = []Direction{DirectionGiven, DirectionTaken}

// Valid reports whether d is a known direction.
func (d Direction) Valid() bool { return contains(Directions, d) }

// PredictionMethod is the model family used by the AI predictor.
type PredictionMethod string

// Prediction methods.
const (
	PredictionMethodAuto       PredictionMethod = "auto"
	PredictionMethodLinear     PredictionMethod = "linear"
	PredictionMethodPolynomial PredictionMethod = "polynomial"
	PredictionMethodTimeSeries PredictionMethod = "time_series"
	PredictionMethodEnsemble   PredictionMethod = "ensemble"
)

// PredictionMethods lists every prediction method.
var PredictionMethods = []PredictionMethod{
	PredictionMethodAuto, PredictionMethodLinear, PredictionMethodPolynomial,
	PredictionMethodTimeSeries, PredictionMethodEnsemble,
}

// Valid reports whether m is a known prediction method.
func (m PredictionMethod) Valid() bool { return contains(PredictionMethods, m) }

// SpendingLevel is the coarse bucket the AI attaches to a prediction.
type SpendingLevel string

// Spending levels.
const (
	SpendingLevelLow      SpendingLevel = "low"
	SpendingLevelMedium   SpendingLevel = "medium"
	SpendingLevelHigh     SpendingLevel = "high"
	SpendingLevelVeryHigh SpendingLevel = "very_high"
)

// SpendingLevels lists every spending level.
var SpendingLevels = []SpendingLevel{SpendingLevelLow, SpendingLevelMedium, SpendingLevelHigh, SpendingLevelVeryHigh}

// Valid reports whether l is a known spending level.
func (l SpendingLevel) Valid() bool { return contains(SpendingLevels, l) }

func contains[T comparable](set []T, v T) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
