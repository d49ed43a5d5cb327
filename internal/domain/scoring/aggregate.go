package scoring

import "github.com/solaudit/solaudit/internal/domain"

// penaltyCap bounds how much accumulated weight a single bucket can absorb,
// which in turn floors the bucket score at 1 well before the max guard.
const penaltyCap = 40.0

// codeQualityShare is the fraction of every finding's weight that bleeds
// into the codeQuality bucket regardless of the finding's own categories.
const codeQualityShare = 0.3

// Overall score weights per category.
const (
	weightSecurity      = 0.30
	weightGasEfficiency = 0.20
	weightPerformance   = 0.20
	weightCodeQuality   = 0.20
	weightDocumentation = 0.10
)

// Aggregate buckets findings into the five category scores and derives the
// weighted overall score, rounded to one decimal place.
//
// A finding contributes its full severity weight to each category it is
// tagged with, plus codeQualityShare of that weight to codeQuality. With no
// findings at all, every score is a perfect 10.
func Aggregate(findings []domain.Finding) (domain.CategoryScores, float64) {
	penalties := make(map[domain.Category]float64, 5)
	for _, f := range findings {
		w := f.Severity.Weight()
		for _, c := range f.Categories {
			if c == domain.CategoryCodeQuality {
				continue // covered by the flat share below
			}
			penalties[c] += w
		}
		penalties[domain.CategoryCodeQuality] += w * codeQualityShare
	}

	scores := domain.CategoryScores{
		Security:      bucketScore(penalties[domain.CategorySecurity]),
		GasEfficiency: bucketScore(penalties[domain.CategoryGasEfficiency]),
		Performance:   bucketScore(penalties[domain.CategoryPerformance]),
		CodeQuality:   bucketScore(penalties[domain.CategoryCodeQuality]),
		Documentation: bucketScore(penalties[domain.CategoryDocumentation]),
	}

	return scores, Overall(scores)
}

// Overall combines the five category scores into the single weighted score.
func Overall(s domain.CategoryScores) float64 {
	return domain.RoundScore(
		weightSecurity*s.Security +
			weightGasEfficiency*s.GasEfficiency +
			weightPerformance*s.Performance +
			weightCodeQuality*s.CodeQuality +
			weightDocumentation*s.Documentation,
	)
}

// bucketScore converts an accumulated penalty into a 1-10 score. The
// penalty is capped first, so the score can never leave [1, 10].
func bucketScore(penalty float64) float64 {
	if penalty > penaltyCap {
		penalty = penaltyCap
	}
	score := 10 - penalty/4
	if score < 1 {
		score = 1
	}
	return score
}
