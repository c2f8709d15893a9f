// Package dto defines request and response shapes for the API endpoints.
package dto

import (
	"github.com/condo-control/backend/internal/application/usecase/indicators"
)

// CategorySliceResponse is one slice of a by-category chart.
type CategorySliceResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ToCategorySlicesResponse converts chart slices to their response shape.
func ToCategorySlicesResponse(slices []indicators.CategorySlice) []CategorySliceResponse {
	response := make([]CategorySliceResponse, len(slices))
	for i, s := range slices {
		response[i] = CategorySliceResponse{
			ID:    s.CategoryID.String(),
			Name:  s.Name,
			Value: s.Value.String(),
		}
	}
	return response
}

// SplitSliceResponse is one half of the fixed versus variable chart.
type SplitSliceResponse struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ToSplitSlicesResponse converts split slices to their response shape.
func ToSplitSlicesResponse(slices []indicators.SplitSlice) []SplitSliceResponse {
	response := make([]SplitSliceResponse, len(slices))
	for i, s := range slices {
		response[i] = SplitSliceResponse{Name: s.Name, Value: s.Value}
	}
	return response
}

// MonthBalancePointResponse is one month of the yearly balance series.
type MonthBalancePointResponse struct {
	Month   string `json:"month"`
	Income  string `json:"income"`
	Expense string `json:"expense"`
	Total   string `json:"total"`
}

// ToMonthBalanceSeriesResponse converts the yearly series to its response shape.
func ToMonthBalanceSeriesResponse(points []indicators.MonthBalancePoint) []MonthBalancePointResponse {
	response := make([]MonthBalancePointResponse, len(points))
	for i, p := range points {
		response[i] = MonthBalancePointResponse{
			Month:   p.Month,
			Income:  p.Income.String(),
			Expense: p.Expense.String(),
			Total:   p.Total.String(),
		}
	}
	return response
}

// InterventionsResumeResponse summarizes a year of improvements and maintenances.
type InterventionsResumeResponse struct {
	ImprovementsImplemented      int    `json:"improvementsImplemented"`
	ImprovementsCost             string `json:"improvementsCost"`
	AverageImprovementCost       string `json:"averageImprovementCost"`
	AverageImprovementDays       string `json:"averageImprovementDays"`
	PercentageImpactImprovements string `json:"percentageImpactImprovements"`
	MaintenancesPerformed        int    `json:"maintenancesPerformed"`
	MaintenanceCost              string `json:"maintenanceCost"`
	AverageMaintenanceCost       string `json:"averageMaintenanceCost"`
	PercentageImpactMaintenances string `json:"percentageImpactMaintenances"`
}

// ToInterventionsResumeResponse converts the resume output to its response shape.
func ToInterventionsResumeResponse(resume *indicators.InterventionsResume) InterventionsResumeResponse {
	return InterventionsResumeResponse{
		ImprovementsImplemented:      resume.ImprovementsImplemented,
		ImprovementsCost:             resume.ImprovementsCost.String(),
		AverageImprovementCost:       resume.AverageImprovementCost,
		AverageImprovementDays:       resume.AverageImprovementDays,
		PercentageImpactImprovements: resume.PercentageImpactImprovements,
		MaintenancesPerformed:        resume.MaintenancesPerformed,
		MaintenanceCost:              resume.MaintenanceCost.String(),
		AverageMaintenanceCost:       resume.AverageMaintenanceCost,
		PercentageImpactMaintenances: resume.PercentageImpactMaintenances,
	}
}
