package proximity

import "math"

// Qualitative level bands over the overall score.
type Level string

const (
	LevelPoor      Level = "poor"      // < 40
	LevelFair      Level = "fair"      // 40-59
	LevelGood      Level = "good"      // 60-79
	LevelExcellent Level = "excellent" // >= 80
)

// Breakdown carries the sub-scores behind an overall result. RIASEC and
// Communication are 0-100 where higher is better; Conflict and Friction are
// 0-100 penalties where higher is worse; CollabBonus is a 0-100 lift from a
// declared collaboration link.
type Breakdown struct {
	RIASEC        float64 `json:"riasec"`
	Communication float64 `json:"communication"`
	Conflict      float64 `json:"conflict"`
	Friction      float64 `json:"friction"`
	CollabBonus   float64 `json:"collabBonus"`
}

// Result is the full outcome of scoring one pair of profiles.
type Result struct {
	Overall   int       `json:"overall"`
	Breakdown Breakdown `json:"breakdown"`
	Level     Level     `json:"level"`
	Insights  []string  `json:"insights"`
}

// Combination weights. The four core factors sum to 1.0; the collaboration
// bonus is additive on top so that pairs without any declared link are not
// dragged down, with the final clamp capping strongly-linked pairs at 100.
const (
	weightRIASEC        = 0.35
	weightCommunication = 0.30
	weightConflict      = 0.20
	weightFriction      = 0.15
	weightCollabBonus   = 0.20
)

// Neutral sub-score defaults used when a profile side lacks the data for a
// factor. Missing data must never fail the computation or act as a penalty.
const (
	neutralRIASEC        = 50.0
	neutralCommunication = 50.0
	baseConflict         = 10.0
)

// Score computes the compatibility result for two distinct people. It is
// symmetric: Score(a, b) and Score(b, a) produce identical results.
func Score(a, b PersonProfile) Result {
	bd := Breakdown{
		RIASEC:        riasecScore(a.RIASEC, b.RIASEC),
		Communication: communicationScore(a.SoftSkills, b.SoftSkills),
		Conflict:      conflictRisk(a.RiskFactors, b.RiskFactors),
		Friction:      environmentalFriction(a, b),
		CollabBonus:   collaborationBonus(a, b),
	}

	overall := weightRIASEC*bd.RIASEC +
		weightCommunication*bd.Communication +
		weightConflict*(100-bd.Conflict) +
		weightFriction*(100-bd.Friction) +
		weightCollabBonus*bd.CollabBonus

	score := int(math.Round(clamp(overall)))

	return Result{
		Overall:   score,
		Breakdown: bd,
		Level:     levelFor(score),
		Insights:  insightsFor(bd, score),
	}
}

func levelFor(score int) Level {
	switch {
	case score < 40:
		return LevelPoor
	case score < 60:
		return LevelFair
	case score < 80:
		return LevelGood
	default:
		return LevelExcellent
	}
}

// complementaryPairs are the RIASEC dimension pairings treated as mutually
// reinforcing between neighbours: strength on one side of the pairing
// combined with the partner's strength on the other contributes synergy.
var complementaryPairs = [][2]func(RIASEC) float64{
	{func(r RIASEC) float64 { return r.Social }, func(r RIASEC) float64 { return r.Enterprising }},
	{func(r RIASEC) float64 { return r.Realistic }, func(r RIASEC) float64 { return r.Conventional }},
	{func(r RIASEC) float64 { return r.Investigative }, func(r RIASEC) float64 { return r.Artistic }},
}

func riasecDims(r RIASEC) [6]float64 {
	return [6]float64{r.Realistic, r.Investigative, r.Artistic, r.Social, r.Enterprising, r.Conventional}
}

// riasecScore rates interest-profile complementarity: 50 base, plus synergy
// from complementary dimension pairings, minus friction from raw
// per-dimension divergence. Neutral 50 when either vector is absent.
func riasecScore(a, b *RIASEC) float64 {
	if a == nil || b == nil {
		return neutralRIASEC
	}

	var synergy float64
	for _, pair := range complementaryPairs {
		p, q := pair[0], pair[1]
		synergy += (math.Min(p(*a), q(*b)) + math.Min(q(*a), p(*b))) / 2
	}

	da, db := riasecDims(*a), riasecDims(*b)
	var friction float64
	for i := range da {
		friction += math.Abs(da[i] - db[i])
	}
	friction /= 6

	return clamp(50 + synergy/6 - friction/2)
}

// communicationTags are the soft-skill tags that directly describe
// communication style; sharing one weighs more than sharing any other skill.
var communicationTags = map[string]bool{
	"active-listening":   true,
	"clear-communicator": true,
	"empathetic":         true,
	"mediator":           true,
	"team-player":        true,
	"storyteller":        true,
}

// communicationScore rates soft-skill overlap. Neutral 50 when either side
// declared no soft skills.
func communicationScore(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return neutralCommunication
	}

	set := make(map[string]bool, len(a))
	for _, t := range a {
		set[t] = true
	}

	score := 50.0
	seen := make(map[string]bool, len(b))
	for _, t := range b {
		if !set[t] || seen[t] {
			continue
		}
		seen[t] = true
		if communicationTags[t] {
			score += 15
		} else {
			score += 5
		}
	}
	return clamp(score)
}

// conflictClashes lists risk-factor pairings that clash across two people.
// Checked in both directions; a shared risk factor is a clash on its own.
var conflictClashes = [][2]string{
	{"dominant", "strong-opinions"},
	{"impatient", "slow-paced"},
	{"critical", "conflict-avoidant"},
}

// conflictRisk rates the likelihood of friction from declared risk factors.
// Higher is worse; 10 is the floor when nothing is observed.
func conflictRisk(a, b []string) float64 {
	setA := tagSet(a)
	setB := tagSet(b)

	risk := baseConflict
	for t := range setA {
		if setB[t] {
			risk += 25
		}
	}
	for _, clash := range conflictClashes {
		if setA[clash[0]] && setB[clash[1]] {
			risk += 20
		}
		if setA[clash[1]] && setB[clash[0]] {
			risk += 20
		}
	}
	return clamp(risk)
}

// environmentMismatches are tag pairings, drawn from the union of a person's
// soft skills, values and risk factors, that imply a sensory or
// environmental clash between neighbours.
var environmentMismatches = [][2]string{
	{"noise-sensitive", "talkative"},
	{"quiet-environment", "lively-environment"},
	{"tidy-space", "creative-clutter"},
}

// environmentPreferences are tags where both people declaring the same one
// eases cohabitation.
var environmentPreferences = map[string]bool{
	"quiet-environment":  true,
	"lively-environment": true,
	"tidy-space":         true,
}

// environmentalFriction rates sensory/environmental mismatch as a penalty.
func environmentalFriction(a, b PersonProfile) float64 {
	setA := tagSet(append(append(append([]string{}, a.SoftSkills...), a.Values...), a.RiskFactors...))
	setB := tagSet(append(append(append([]string{}, b.SoftSkills...), b.Values...), b.RiskFactors...))

	var friction float64
	for _, mm := range environmentMismatches {
		if setA[mm[0]] && setB[mm[1]] {
			friction += 30
		}
		if setA[mm[1]] && setB[mm[0]] {
			friction += 30
		}
	}
	for t := range environmentPreferences {
		if setA[t] && setB[t] {
			friction -= 10
		}
	}
	return clamp(friction)
}

// collaborationBonus rewards seating declared collaborators together. The
// strongest effective percentage across both directions drives the bonus;
// taking the max keeps the result independent of argument order.
func collaborationBonus(a, b PersonProfile) float64 {
	pctAB, affAB, okAB := effectiveLink(a, b.MemberID)
	pctBA, affBA, okBA := effectiveLink(b, a.MemberID)
	if !okAB && !okBA {
		return 0
	}

	pct, aff := pctAB, affAB
	switch {
	case !okAB:
		pct, aff = pctBA, affBA
	case okBA && pctBA > pct:
		pct, aff = pctBA, affBA
	case okBA && pctBA == pct && affBA > aff:
		aff = affBA
	}

	return clamp(pct*1.2 + float64(aff-3)*10)
}

// effectiveLink resolves the strongest declared link from one profile to a
// target member, expanding team links through their member breakdown. A
// member observed through several links (direct plus team) takes the max
// percentage, not the sum, to avoid double-counting overlapping
// declarations.
func effectiveLink(from PersonProfile, targetID int64) (pct float64, affinity int, ok bool) {
	for _, link := range from.Links {
		switch link.Target {
		case LinkTargetMember:
			if link.TargetID != targetID {
				continue
			}
			if !ok || link.Percentage > pct || (link.Percentage == pct && link.Affinity > affinity) {
				pct, affinity = link.Percentage, link.Affinity
			}
			ok = true
		case LinkTargetTeam:
			for _, m := range link.Members {
				if m.MemberID != targetID {
					continue
				}
				eff := math.Round(link.Percentage * m.SharePercent / 100)
				if eff < flowNoiseFloor {
					continue
				}
				aff := link.Affinity
				if m.Affinity != nil {
					aff = *m.Affinity
				}
				if !ok || eff > pct || (eff == pct && aff > affinity) {
					pct, affinity = eff, aff
				}
				ok = true
			}
		}
	}
	return pct, affinity, ok
}

func insightsFor(bd Breakdown, overall int) []string {
	var out []string
	if bd.CollabBonus >= 40 {
		out = append(out, "Declared collaborators: close seating supports their day-to-day workflow.")
	}
	if bd.RIASEC >= 70 {
		out = append(out, "Interest profiles complement each other well.")
	}
	if bd.Communication >= 70 {
		out = append(out, "Communication styles align.")
	}
	if bd.Conflict >= 50 {
		out = append(out, "Conflict risk is the main drag on this pairing.")
	}
	if bd.Friction >= 30 {
		out = append(out, "Environmental preferences clash; a buffer desk may help.")
	}
	if len(out) == 0 {
		if overall >= 60 {
			out = append(out, "Balanced pairing with no dominant factor.")
		} else {
			out = append(out, "Weak pairing with no single dominant factor.")
		}
	}
	return out
}

func tagSet(tags []string) map[string]bool {
	set := make(map[string]bool, len(tags))
	for _, t := range tags {
		set[t] = true
	}
	return set
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
