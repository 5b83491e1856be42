package wheel

// BalancedSpread is the largest max-min gap for which a wheel counts as balanced.
const BalancedSpread = 3

// Evaluate computes everything a render needs from the questionnaire and the
// current ratings. It is pure and is called again after every rating change.
func Evaluate(q *Questionnaire, s ScoreSet) Assessment {
	return Assessment{
		Summary:  Summarize(ComputeAggregate(s)),
		Points:   Project(q, s),
		Answers:  Answers(q, s),
		Insights: ComputeInsights(q, s),
	}
}

// ComputeInsights finds the lowest-rated questions (the growth levers) and the
// spread between the strongest and weakest axis. A flat wheel has no levers.
func ComputeInsights(q *Questionnaire, s ScoreSet) Insights {
	lo, hi := s[0], s[0]
	for _, v := range s[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	var levers []string
	for i, v := range s {
		if v == lo && lo != hi {
			levers = append(levers, q.Questions[i].ID)
		}
	}

	spread := hi - lo
	return Insights{
		Levers:   levers,
		Spread:   spread,
		Balanced: spread <= BalancedSpread,
	}
}
