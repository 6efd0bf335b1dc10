// Package profile defines the strict UserProfile schema consumed by the
// advisory pipeline. The chat front end passes loosely shaped user objects;
// everything is coerced or defaulted here so downstream code never sees an
// undefined value.
package profile

import "strings"

// RiskTolerance enumerates the accepted risk appetites.
type RiskTolerance string

const (
	RiskConservative RiskTolerance = "conservative"
	RiskModerate     RiskTolerance = "moderate"
	RiskAggressive   RiskTolerance = "aggressive"
)

// UserProfile is the immutable input profile. Salary, expenses and target
// savings are monthly, non-negative numbers; a profile where expenses exceed
// salary is valid and must still produce advice.
type UserProfile struct {
	Name          string        `json:"name"`
	Salary        float64       `json:"salary"`
	Expenses      float64       `json:"expenses"`
	RiskTolerance RiskTolerance `json:"risk_tolerance"`
	TargetSavings float64       `json:"target_savings"`
	Country       string        `json:"country"`
	Language      string        `json:"language"`
	LifeStage     string        `json:"life_stage"`
	Goals         []string      `json:"goals"`
}

// Normalize applies defensive defaults in place of malformed values and
// returns the cleaned copy. Negative numbers collapse to zero, an unknown
// risk tolerance becomes moderate, missing strings stay empty (the fallback
// path substitutes "there" for a missing name at render time).
func Normalize(p UserProfile) UserProfile {
	if p.Salary < 0 {
		p.Salary = 0
	}
	if p.Expenses < 0 {
		p.Expenses = 0
	}
	if p.TargetSavings < 0 {
		p.TargetSavings = 0
	}

	switch RiskTolerance(strings.ToLower(strings.TrimSpace(string(p.RiskTolerance)))) {
	case RiskConservative:
		p.RiskTolerance = RiskConservative
	case RiskAggressive:
		p.RiskTolerance = RiskAggressive
	default:
		p.RiskTolerance = RiskModerate
	}

	p.Name = strings.TrimSpace(p.Name)
	if p.Goals == nil {
		p.Goals = []string{}
	}

	return p
}

// Surplus is salary minus expenses. It may be negative; callers must show
// the true value rather than clamp it.
func (p UserProfile) Surplus() float64 {
	return p.Salary - p.Expenses
}

// DisplayName returns the name to greet the user by, with the documented
// default when the profile carries none.
func (p UserProfile) DisplayName() string {
	if name := strings.TrimSpace(p.Name); name != "" {
		return name
	}
	return "there"
}
