package metrics

import (
	"time"

	"github.com/jekabolt/organic-reports/internal/entity"
	"github.com/shopspring/decimal"
)

// NewCustomerWindow is the trailing window, counted back from the evaluation
// instant, in which a registration makes a customer "new". It does not follow
// the report date range.
const NewCustomerWindow = 30 * 24 * time.Hour

// SynthesizeCustomers derives customer counts from user records. Everything
// except the counts and growth rate is a fixed placeholder, since it cannot
// be derived from users alone.
func SynthesizeCustomers(users []entity.User, now time.Time) entity.CustomerAnalytics {
	since := now.Add(-NewCustomerWindow)
	ca := illustrativeCustomerAnalytics()
	for _, u := range users {
		ca.TotalCustomers++
		if u.IsActive() {
			ca.ActiveCustomers++
		}
		if !u.CreatedAt.IsZero() && !u.CreatedAt.Before(since) && !u.CreatedAt.After(now) {
			ca.NewCustomers++
		}
	}
	ca.GrowthRate = growthRate(ca.NewCustomers, ca.TotalCustomers)
	return ca
}

// growthRate is new customers relative to the customers that existed before
// the window, in percent.
func growthRate(newCustomers, total int) decimal.Decimal {
	base := total - newCustomers
	if base <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(newCustomers)).
		Div(decimal.NewFromInt(int64(base))).
		Mul(decimal.NewFromInt(100)).
		Round(2)
}

func illustrativeCustomerAnalytics() entity.CustomerAnalytics {
	return entity.CustomerAnalytics{
		GrowthRate: decimal.Zero,
		Segments: []entity.CustomerSegment{
			{Name: "New", Count: 0, Percentage: decimal.NewFromInt(35)},
			{Name: "Regular", Count: 0, Percentage: decimal.NewFromInt(45)},
			{Name: "Loyal", Count: 0, Percentage: decimal.NewFromInt(20)},
		},
		Demographics: entity.Demographics{
			AgeGroups: []entity.Share{
				{Label: "18-24", Percentage: decimal.NewFromInt(15)},
				{Label: "25-34", Percentage: decimal.NewFromInt(35)},
				{Label: "35-44", Percentage: decimal.NewFromInt(28)},
				{Label: "45-54", Percentage: decimal.NewFromInt(14)},
				{Label: "55+", Percentage: decimal.NewFromInt(8)},
			},
			Regions: []entity.Share{
				{Label: "North", Percentage: decimal.NewFromInt(42)},
				{Label: "Central", Percentage: decimal.NewFromInt(21)},
				{Label: "West", Percentage: decimal.NewFromInt(17)},
				{Label: "South", Percentage: decimal.NewFromInt(12)},
				{Label: "Other", Percentage: decimal.NewFromInt(8)},
			},
		},
		MostViewedProducts: []entity.ViewedProduct{
			{Name: "Organic Honey", Views: 1250},
			{Name: "Village Eggs", Views: 980},
			{Name: "Olive Oil", Views: 860},
			{Name: "Whole Wheat Flour", Views: 640},
			{Name: "Dried Apricots", Views: 510},
		},
		NavigationPaths: []entity.NavigationPath{
			{Path: "Home > Category > Product", Count: 420},
			{Path: "Search > Product", Count: 310},
			{Path: "Campaign > Product > Cart", Count: 180},
		},
		AgePreferences: []entity.Preference{
			{Group: "18-24", Category: "Snacks"},
			{Group: "25-34", Category: "Dairy"},
			{Group: "35-44", Category: "Vegetables"},
			{Group: "45+", Category: "Oils"},
		},
		RegionPreferences: []entity.Preference{
			{Group: "North", Category: "Dairy"},
			{Group: "West", Category: "Oils"},
			{Group: "Central", Category: "Grains"},
		},
		Illustrative: true,
	}
}
