// internal/domain/models.go
package domain

import "slices"

type CompetitionLevel string

const (
	CompetitionLow    CompetitionLevel = "low"
	CompetitionMedium CompetitionLevel = "medium"
	CompetitionHigh   CompetitionLevel = "high"
)

type PriceRange struct {
	Min float64 `json:"min" validate:"gte=0"`
	Max float64 `json:"max" validate:"gtefield=Min"`
}

// ProductIntelligence describes one product category. ID doubles as the catalog key.
type ProductIntelligence struct {
	ID               string           `json:"id" validate:"required,snakecase"`
	Name             string           `json:"name" validate:"required,notblank"`
	Description      string           `json:"description" validate:"required,notblank"`
	MarketGrowth     string           `json:"market_growth" validate:"required,notblank"`
	Competition      CompetitionLevel `json:"competition" validate:"oneof=low medium high"`
	AvgMarginPercent float64          `json:"avg_margin_percent" validate:"gte=0,lte=100"`
	PriceRange       PriceRange       `json:"price_range"`
	Keywords         []string         `json:"keywords" validate:"min=1,dive,notblank"`
	Audiences        []string         `json:"audiences" validate:"dive,notblank"`
	SellingPoints    []string         `json:"selling_points" validate:"dive,notblank"`
}

// Clone returns a copy that shares no slices with p.
func (p ProductIntelligence) Clone() ProductIntelligence {
	p.Keywords = slices.Clone(p.Keywords)
	p.Audiences = slices.Clone(p.Audiences)
	p.SellingPoints = slices.Clone(p.SellingPoints)
	return p
}

type Tier string

const (
	TierFree       Tier = "free"
	TierPro        Tier = "pro"
	TierEnterprise Tier = "enterprise"
)

// User is owned by the database layer; this app only reads it.
type User struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	Tier          Tier   `json:"tier"`
	ShortCredits  int    `json:"short_credits"`
	MediumCredits int    `json:"medium_credits"`
}
