package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// CheckoutPlan is a purchasable upgrade.
type CheckoutPlan string

const (
	PlanFeaturedJob    CheckoutPlan = "featured_job"
	PlanPremiumProfile CheckoutPlan = "premium_profile"
)

// PlanPrices holds the fixed price table in cents.
var PlanPrices = map[CheckoutPlan]int64{
	PlanFeaturedJob:    9900,
	PlanPremiumProfile: 4900,
}

// CheckoutStatus is the simulated payment state.
type CheckoutStatus string

const (
	CheckoutProcessing CheckoutStatus = "processing"
	CheckoutSucceeded  CheckoutStatus = "succeeded"
	CheckoutCanceled   CheckoutStatus = "canceled"
)

// Checkout is a simulated card payment that settles after a fixed delay.
type Checkout struct {
	ID          uuid.UUID      `json:"id"`
	UserID      uuid.UUID      `json:"userId"`
	Plan        CheckoutPlan   `json:"plan"`
	JobID       null.String    `json:"jobId,omitempty"`
	AmountCents int64          `json:"amountCents"`
	Currency    string         `json:"currency"`
	Status      CheckoutStatus `json:"status"`
	SettleAt    time.Time      `json:"settleAt"`
	SettledAt   null.Time      `json:"settledAt,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// CheckoutInput starts a checkout.
type CheckoutInput struct {
	Plan  string `json:"plan" binding:"required"`
	JobID string `json:"jobId"`
}
