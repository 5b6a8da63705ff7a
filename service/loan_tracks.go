package service

import (
	"slices"
	"sort"

	"mortgage-power/domain"
)

// conformingLimits overrides DefaultConformingLimit for high-cost states.
var conformingLimits = map[string]float64{
	"AK": HighCostConformingLimit,
	"HI": HighCostConformingLimit,
}

func ConformingLimit(state string) float64 {
	if limit, ok := conformingLimits[state]; ok {
		return limit
	}
	return DefaultConformingLimit
}

// trackContext is everything a program rule needs to decide on a profile.
type trackContext struct {
	profile     domain.FinancialProfile
	tier        domain.CreditTierInfo
	target      domain.Scenario
	rate        float64
	downDollars float64
	downPct     float64
}

// trackDecision is the outcome of one program's gate. included=false means
// the program does not appear at all.
type trackDecision struct {
	included  bool
	status    domain.TrackStatus
	reason    string
	rateDelta float64
}

type programRule struct {
	name           string
	minDownPayment float64
	badge          string
	pros           []string
	cons           []string
	bestFor        string
	ranking        map[domain.TrackStatus]int
	pmiRequired    func(c trackContext) bool
	decide         func(c trackContext) trackDecision
}

func adverseCredit(p domain.FinancialProfile) bool {
	return p.Bankruptcy || p.Collections
}

var programRules = []programRule{
	{
		name:           "Conventional",
		minDownPayment: 0.03,
		badge:          "Most Popular",
		pros:           []string{"PMI can be removed at 20% equity", "Flexible property types", "Competitive rates for strong credit"},
		cons:           []string{"Stricter credit requirements", "PMI below 20% down"},
		bestFor:        "Borrowers with good credit and stable income",
		ranking:        map[domain.TrackStatus]int{domain.StatusLikely: 90, domain.StatusPossible: 70},
		pmiRequired:    func(c trackContext) bool { return c.downPct < 0.20 },
		decide: func(c trackContext) trackDecision {
			p := c.profile
			if p.CreditBucket != "720+" && p.CreditBucket != "680-719" {
				return trackDecision{}
			}
			if p.DTIRatio >= QualifiedDTILimit || adverseCredit(p) {
				return trackDecision{}
			}
			d := trackDecision{included: true, status: domain.StatusLikely, reason: "Strong credit and healthy DTI ratio"}
			if (p.GiftFunded() && c.downPct < 0.10) || p.NonPermanentResident() {
				d.status = domain.StatusPossible
				d.reason = "Strong credit, but gift funds or residency status need extra documentation"
			}
			return d
		},
	},
	{
		name:           "FHA",
		minDownPayment: 0.035,
		badge:          "Low Down Payment",
		pros:           []string{"3.5% minimum down payment", "More forgiving credit requirements", "Gift funds allowed"},
		cons:           []string{"Mortgage insurance for the life of most loans", "Property must meet FHA standards"},
		bestFor:        "First-time buyers and borrowers rebuilding credit",
		ranking:        map[domain.TrackStatus]int{domain.StatusLikely: 80, domain.StatusPossible: 60},
		pmiRequired:    func(trackContext) bool { return true },
		decide: func(c trackContext) trackDecision {
			if c.tier.NumericFloor < 580 {
				return trackDecision{}
			}
			switch {
			case c.downPct >= 0.035 || c.downDollars >= 10_000:
				return trackDecision{included: true, status: domain.StatusLikely, reason: "Meets minimum down payment and credit requirements", rateDelta: 0.25}
			case c.profile.FirstTimeHomebuyer:
				return trackDecision{included: true, status: domain.StatusPossible, reason: "First-time buyers often qualify with low down payment options", rateDelta: 0.25}
			}
			return trackDecision{}
		},
	},
	{
		name:           "VA",
		minDownPayment: 0,
		badge:          "Best Rate",
		pros:           []string{"No down payment required", "No monthly mortgage insurance", "Lower rates than conventional"},
		cons:           []string{"One-time funding fee", "Primary residence only"},
		bestFor:        "Eligible veterans and service members",
		ranking:        map[domain.TrackStatus]int{domain.StatusLikely: 95, domain.StatusPossible: 75},
		pmiRequired:    func(trackContext) bool { return false },
		decide: func(c trackContext) trackDecision {
			p := c.profile
			if p.Occupancy != "primary" || !p.VeteranEligible || p.NonPermanentResident() {
				return trackDecision{}
			}
			d := trackDecision{included: true, status: domain.StatusLikely, reason: "VA eligibility supports lower down payment requirements", rateDelta: -0.25}
			if adverseCredit(p) {
				d.status = domain.StatusPossible
				d.reason = "VA eligible, but recent credit events will be reviewed closely"
			}
			return d
		},
	},
	{
		name:           "Jumbo",
		minDownPayment: 0.20,
		pros:           []string{"Finances homes above conforming limits", "No PMI with 20% down"},
		cons:           []string{"Higher reserve requirements", "Strict credit and DTI standards"},
		bestFor:        "High-income borrowers buying above the conforming limit",
		ranking:        map[domain.TrackStatus]int{domain.StatusPossible: 65, domain.StatusUnlikely: 20},
		pmiRequired:    func(trackContext) bool { return false },
		decide: func(c trackContext) trackDecision {
			if c.target.MaxLoanAmount <= ConformingLimit(c.profile.State) {
				return trackDecision{}
			}
			if c.profile.CreditBucket == "720+" && c.downPct >= 0.20 {
				return trackDecision{included: true, status: domain.StatusPossible, reason: "Loan amount exceeds conforming limits, requires strong profile", rateDelta: 0.5}
			}
			return trackDecision{included: true, status: domain.StatusUnlikely, reason: "Need higher credit score and larger down payment", rateDelta: 0.75}
		},
	},
	{
		name:           "Non-QM",
		minDownPayment: 0.10,
		badge:          "Flexible Docs",
		pros:           []string{"Bank statement and asset-based income", "Available after recent credit events", "Higher DTI allowed"},
		cons:           []string{"Higher rates", "Larger down payment"},
		bestFor:        "Self-employed borrowers and non-traditional profiles",
		ranking:        map[domain.TrackStatus]int{domain.StatusPossible: 50},
		pmiRequired:    func(trackContext) bool { return false },
		decide: func(c trackContext) trackDecision {
			p := c.profile
			if p.SelfEmployed || adverseCredit(p) || p.DTIRatio > QualifiedDTILimit || p.NonPermanentResident() {
				return trackDecision{included: true, status: domain.StatusPossible, reason: "Alternative documentation may help if conventional doesn't work", rateDelta: 1.5}
			}
			return trackDecision{}
		},
	},
}

// ClassifyLoanTracks evaluates every program independently and returns the
// ones whose gate passed, best ranking first.
func ClassifyLoanTracks(profile domain.FinancialProfile, tier domain.CreditTierInfo, target domain.Scenario, ratePercent float64, sub SubScores) []domain.LoanTrack {
	ctx := trackContext{
		profile:     profile,
		tier:        tier,
		target:      target,
		rate:        ratePercent,
		downDollars: sub.DownPaymentDollars,
		downPct:     sub.DownPaymentFraction,
	}

	tracks := make([]domain.LoanTrack, 0, len(programRules))
	for _, rule := range programRules {
		d := rule.decide(ctx)
		if !d.included {
			continue
		}
		track := domain.LoanTrack{
			Program:              rule.name,
			Status:               d.status,
			Reason:               d.reason,
			RankingScore:         rule.ranking[d.status],
			MinDownPayment:       rule.minDownPayment,
			EstimatedRatePercent: ratePercent + d.rateDelta,
			PMIRequired:          rule.pmiRequired(ctx),
			Pros:                 slices.Clone(rule.pros),
			Cons:                 slices.Clone(rule.cons),
			BestFor:              rule.bestFor,
		}
		if d.status != domain.StatusUnlikely {
			track.Badge = rule.badge
			track.MonthlyPaymentEstimate = estimateTrackPayment(ctx, track)
		}
		tracks = append(tracks, track)
	}

	sort.SliceStable(tracks, func(i, j int) bool {
		return tracks[i].RankingScore > tracks[j].RankingScore
	})
	return tracks
}

// estimateTrackPayment prices the Target scenario's loan at the program's
// rate. Returns nil when there is nothing to finance.
func estimateTrackPayment(c trackContext, track domain.LoanTrack) *float64 {
	if c.target.MaxLoanAmount <= 0 {
		return nil
	}
	p := c.profile
	cost := escrow(c.target.MaxPurchasePrice, c.target.MaxLoanAmount, p.PropertyTaxRate, p.InsuranceRate, p.HOAMonthly)
	if !track.PMIRequired {
		cost.PMI = 0
	}
	cost.PrincipalInterest = MonthlyPayment(c.target.MaxLoanAmount, track.EstimatedRatePercent, p.LoanTermYears)
	total := cost.Total()
	return &total
}
