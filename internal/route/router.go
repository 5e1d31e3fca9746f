// Package route classifies validated claims into one of five operational
// queues using a strict, short-circuiting priority cascade.
package route

import (
	"fmt"
	"strings"

	"github.com/claimpilot/fnolagent/internal/model"
	"github.com/claimpilot/fnolagent/internal/normalize"
)

// Router applies the routing policy. Priority order, highest first:
//
//	1. Investigation Flag  - fraud keywords in the incident description
//	2. Specialist Queue    - injury keywords in claim type or description
//	3. Manual Review       - any mandatory field missing
//	4. Fast-track          - damage below threshold, all fields present
//	5. Standard Processing - everything else
//
// The first matching tier wins; no lower tier is evaluated.
type Router struct {
	fastTrackThreshold float64
	fraudKeywords      []string
	injuryKeywords     []string
	currencySymbol     string
}

// NewRouter creates a router with the given policy parameters
func NewRouter(cfg model.RoutingConfig, currency model.CurrencyConfig) *Router {
	return &Router{
		fastTrackThreshold: cfg.FastTrackThreshold,
		fraudKeywords:      cfg.FraudKeywords,
		injuryKeywords:     cfg.InjuryKeywords,
		currencySymbol:     currency.Symbol,
	}
}

// Route selects exactly one queue and a non-empty reasoning string built
// from justification sentences joined with ". ".
func (r *Router) Route(fs *model.FieldSet, missingFields []string) model.RoutingDecision {
	var reasons []string

	description := strings.ToLower(model.Deref(fs.IncidentInformation.Description))

	// Priority 1: Investigation Flag
	var fraudFound []string
	for _, kw := range r.fraudKeywords {
		if strings.Contains(description, kw) {
			fraudFound = append(fraudFound, kw)
		}
	}
	if len(fraudFound) > 0 {
		reasons = append(reasons, fmt.Sprintf(
			"Description contains fraud-related keywords: %s", strings.Join(fraudFound, ", ")))
		return decision(model.RouteInvestigation, reasons)
	}

	// Priority 2: Specialist Queue, preferring a claim-type match when
	// naming the source field
	claimType := strings.ToLower(model.Deref(fs.OtherFields.ClaimType))
	injuryInType := containsAny(claimType, r.injuryKeywords)
	injuryInDesc := containsAny(description, r.injuryKeywords)
	if injuryInType || injuryInDesc {
		where := "description"
		if injuryInType {
			where = "claim type"
		}
		reasons = append(reasons, fmt.Sprintf("Injury-related claim detected in %s", where))
		return decision(model.RouteSpecialist, reasons)
	}

	// Priority 3: Manual Review
	if len(missingFields) > 0 {
		names := make([]string, len(missingFields))
		for i, f := range missingFields {
			if idx := strings.LastIndex(f, "."); idx >= 0 {
				names[i] = f[idx+1:]
			} else {
				names[i] = f
			}
		}
		reasons = append(reasons, fmt.Sprintf("Missing mandatory fields: %s (%d field(s))",
			strings.Join(names, ", "), len(missingFields)))
		return decision(model.RouteManualReview, reasons)
	}

	// Priority 4: Fast-track vs. Standard Processing by damage amount
	if damage := model.Deref(fs.AssetDetails.EstimatedDamage); damage != "" {
		val, err := normalize.Amount(damage)
		if err != nil {
			reasons = append(reasons, "Could not parse estimated damage amount. Routing to standard processing")
			return decision(model.RouteStandard, reasons)
		}
		if val < r.fastTrackThreshold {
			reasons = append(reasons, fmt.Sprintf("Estimated damage %s%s is below fast-track threshold of %s%s",
				r.currencySymbol, normalize.FormatAmount(val),
				r.currencySymbol, normalize.FormatAmount(r.fastTrackThreshold)))
			reasons = append(reasons, "All mandatory fields are present")
			return decision(model.RouteFastTrack, reasons)
		}
		reasons = append(reasons, fmt.Sprintf("Estimated damage %s%s exceeds fast-track threshold of %s%s",
			r.currencySymbol, normalize.FormatAmount(val),
			r.currencySymbol, normalize.FormatAmount(r.fastTrackThreshold)))
		reasons = append(reasons, "All mandatory fields are present. Routed to standard processing")
		return decision(model.RouteStandard, reasons)
	}

	// Priority 5: default
	reasons = append(reasons, "All mandatory fields present. No special conditions detected")
	return decision(model.RouteStandard, reasons)
}

func decision(route model.Route, reasons []string) model.RoutingDecision {
	return model.RoutingDecision{Route: route, Reasoning: strings.Join(reasons, ". ")}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
