// Package scoring maps a lead profile to a sales score, a category and a
// recommended insurance model.
package scoring

import (
	"strings"
	"time"

	"grenzgaenger_service/internal/domain/entities"
)

const (
	baseScore    = 50
	minScore     = 0
	maxScore     = 100
	hotThreshold = 75

	secondsPerDay = 24 * 60 * 60
	daysPerYear   = 365
)

var chCantonMarkers = []string{"zh", "zürich", "zuerich", "basel", "bs", "ge", "genf"}

// ScoreLead computes the derived lead fields. today is the reference date for
// the age factor; only its calendar date is used.
func ScoreLead(l entities.Lead, today time.Time) entities.LeadScore {
	score := baseScore

	if l.BirthDate != nil {
		switch age := AgeInYears(*l.BirthDate, today); {
		case age < 30:
			score += 10
		case age > 55:
			score -= 5
		}
	}

	switch l.Status {
	case entities.StatusNewCommuter:
		score += 15
	case entities.StatusPlanningSwitch:
		score += 5
	}

	switch l.Family {
	case entities.FamilyWithChildren:
		score += 10
	case entities.FamilyWithPartner:
		score += 5
	}

	if l.ConsentEmail {
		score += 5
	}
	if l.ConsentWhatsApp {
		score += 10
	}

	score = clamp(score, minScore, maxScore)

	category := entities.LeadCategoryWarm
	if score >= hotThreshold {
		category = entities.LeadCategoryHot
	}

	return entities.LeadScore{
		Score:            score,
		Category:         category,
		RecommendedModel: RecommendModel(l.WorkCH),
	}
}

// AgeInYears approximates age as whole days divided by 365, floored.
// Leap days are ignored.
func AgeInYears(birthDate, today time.Time) int {
	days := epochDay(today) - epochDay(birthDate)
	return floorDiv(days, daysPerYear)
}

// RecommendModel derives the insurance model from the work location.
// Liechtenstein wins over the Swiss canton markers.
func RecommendModel(workCH string) entities.InsuranceModel {
	canton := strings.ToLower(strings.TrimSpace(workCH))
	if strings.Contains(canton, "liechtenstein") || canton == "fl" {
		return entities.ModelAT
	}
	for _, marker := range chCantonMarkers {
		if strings.Contains(canton, marker) {
			return entities.ModelCH
		}
	}
	return entities.ModelHybrid
}

func epochDay(t time.Time) int64 {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return d.Unix() / secondsPerDay
}

func floorDiv(a, b int64) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return int(q)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
