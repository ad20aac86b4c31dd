// Package audit runs the fixed rule battery against a home profile and a
// predicted usage breakdown, producing the ranked measure candidate list.
package audit

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/shansomashekar-star/energy-assesmnet-residential-model/internal/domain"
	"github.com/shansomashekar-star/energy-assesmnet-residential-model/internal/modules/audit/rules"
	"github.com/shansomashekar-star/energy-assesmnet-residential-model/internal/modules/rates"
	"github.com/shansomashekar-star/energy-assesmnet-residential-model/internal/modules/savings"
)

// Engine evaluates the rule battery. Stateless across requests; safe for
// concurrent use.
type Engine struct {
	rules []rules.Rule
	log   zerolog.Logger
}

// New creates an engine with the standard nine-category battery.
func New(log zerolog.Logger) *Engine {
	return &Engine{
		rules: rules.All(),
		log:   log.With().Str("component", "audit_engine").Logger(),
	}
}

// GenerateRecommendations evaluates every rule category in order against
// the profile and breakdown, then stable-sorts the fired candidates by
// ascending payback. Infinite-payback candidates sort last; equal paybacks
// keep category evaluation order. Evaluation of one category never aborts
// the rest.
func (e *Engine) GenerateRecommendations(
	profile domain.HomeProfile,
	usage domain.UsageBreakdown,
	totalKBTU float64,
	r *rates.UtilityRates,
) []domain.Candidate {
	ctx := &rules.Context{
		Profile: profile,
		Usage:   usage,
		Total:   totalKBTU,
		Calc:    savings.New(r, profile.HDD(), profile.CDD()),
		Rates:   r,
	}

	var out []domain.Candidate
	for _, rule := range e.rules {
		fired := rule.Evaluate(ctx)
		if len(fired) == 0 {
			e.log.Debug().Str("category", rule.Category).Msg("No recommendations fired")
			continue
		}
		e.log.Debug().
			Str("category", rule.Category).
			Int("fired", len(fired)).
			Msg("Rule category fired")
		out = append(out, fired...)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SortablePayback() < out[j].SortablePayback()
	})

	e.log.Info().
		Int("recommendations", len(out)).
		Float64("total_kbtu", totalKBTU).
		Msg("Audit rules evaluated")

	return out
}
