package models

import "fmt"

// Salary band labels used by the baseline salary table
const (
	EntryLevel2024  = "Entry-Level 2024"
	MidLevel2024    = "Mid-Level 2024"
	SeniorLevel2024 = "Senior-Level 2024"
)

// Factor column names used by the demand and geography tables
const (
	DemandFactorKey     = "Demand Factor"
	GeographicFactorKey = "Geographic Factor"
)

// RoleRecord represents a salary baseline row for a job role
type RoleRecord struct {
	Role   string             `json:"Role"`
	Fields map[string]float64 `json:"fields"`
}

// Band returns the amount stored under label, or an error if the row lacks it
func (r RoleRecord) Band(label string) (float64, error) {
	amount, ok := r.Fields[label]
	if !ok {
		return 0, fmt.Errorf("role %q has no %q field", r.Role, label)
	}
	return amount, nil
}

// FactorRecord represents a demand or geographic adjustment for a job role
type FactorRecord struct {
	Role   string  `json:"Role"`
	Factor float64 `json:"factor"`
}

// SkillsTable maps a skill name to its premium delta
type SkillsTable map[string]float64

// Total returns the sum of all premium deltas
func (s SkillsTable) Total() float64 {
	var total float64
	for _, premium := range s {
		total += premium
	}
	return total
}

// ProjectionResult represents the projected salaries for a job role
type ProjectionResult struct {
	Role       string  `json:"Role"`
	Entry2025  float64 `json:"Entry-Level 2025"`
	Mid2025    float64 `json:"Mid-Level 2025"`
	Senior2025 float64 `json:"Senior-Level 2025"`
}
