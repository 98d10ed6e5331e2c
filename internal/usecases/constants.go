package usecases

const (
	// CheckoutSettleBatchSize bounds one settlement sweep.
	CheckoutSettleBatchSize = 100
	// CheckoutMaxSettleAttempts is how many failed settlements cancel a checkout.
	CheckoutMaxSettleAttempts = 3

	// DefaultLanguage is used when configuration leaves it empty.
	DefaultLanguage = "en"
)

// Purgeable collections
const (
	CollectionJobs         = "jobs"
	CollectionInvestors    = "investors"
	CollectionApplications = "applications"
	CollectionStartups     = "startups"
	CollectionUsers        = "users"
)

// PurgeableCollections lists every name Purge accepts.
var PurgeableCollections = []string{
	CollectionJobs, CollectionInvestors, CollectionApplications, CollectionStartups, CollectionUsers,
}

// Cleanup reasons reported in metrics and logs
const (
	ReasonDisposableDomain = "disposable_domain"
	ReasonDigitRun         = "digit_run"
)
