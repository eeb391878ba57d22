package model

// MembershipPlan is a subscription offering.
type MembershipPlan struct {
	ID             string   `json:"id" db:"id"`
	Name           string   `json:"name" db:"name"`
	Description    string   `json:"description" db:"description"`
	Price          string   `json:"price" db:"price"`
	Duration       int      `json:"duration" db:"duration"` // days
	Features       []string `json:"features" db:"features"`
	TargetAudience string   `json:"targetAudience" db:"target_audience"`
	IsActive       bool     `json:"isActive" db:"is_active"`
}

// LoyaltyReward is a redeemable perk in the HamCoins programme.
type LoyaltyReward struct {
	ID          string `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
	PointsCost  int    `json:"pointsCost" db:"points_cost"`
	Category    string `json:"category" db:"category"`
	Tier        string `json:"tier" db:"tier"`
	IsActive    bool   `json:"isActive" db:"is_active"`
}
