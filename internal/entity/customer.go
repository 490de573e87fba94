package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

const UserStatusActive = "active"

// User is a registered storefront customer.
type User struct {
	ID        string
	CreatedAt time.Time
	Status    string
}

func (u User) IsActive() bool {
	return u.Status == UserStatusActive
}

// CustomerAnalytics aggregates customer counts plus the breakdowns shown on
// the reports screen. When Illustrative is set the breakdowns are fixed
// placeholders and only the counts are real.
type CustomerAnalytics struct {
	TotalCustomers  int
	ActiveCustomers int
	NewCustomers    int
	GrowthRate      decimal.Decimal

	Segments           []CustomerSegment
	Demographics       Demographics
	MostViewedProducts []ViewedProduct
	NavigationPaths    []NavigationPath
	AgePreferences     []Preference
	RegionPreferences  []Preference

	Illustrative bool
}

type CustomerSegment struct {
	Name       string
	Count      int
	Percentage decimal.Decimal
}

type Demographics struct {
	AgeGroups []Share
	Regions   []Share
}

type Share struct {
	Label      string
	Percentage decimal.Decimal
}

type ViewedProduct struct {
	Name  string
	Views int
}

type NavigationPath struct {
	Path  string
	Count int
}

type Preference struct {
	Group    string
	Category string
}
