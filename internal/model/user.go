package model

import "time"

// Membership tiers ordered by the points needed to reach them.
const (
	TierBronze     = "bronze"
	TierSilver     = "silver"
	TierGold       = "gold"
	TierSharkElite = "shark-elite"
)

// User is a storefront account accruing HamCoins.
type User struct {
	ID             string    `json:"id" db:"id"`
	Username       string    `json:"username" db:"username"`
	Email          string    `json:"email" db:"email"`
	LoyaltyPoints  int       `json:"loyaltyPoints" db:"loyalty_points"`
	MembershipTier string    `json:"membershipTier" db:"membership_tier"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}

// TierForPoints maps a lifetime points balance to a membership tier.
func TierForPoints(points int) string {
	switch {
	case points >= 1000:
		return TierSharkElite
	case points >= 500:
		return TierGold
	case points >= 250:
		return TierSilver
	default:
		return TierBronze
	}
}
