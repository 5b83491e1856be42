package wheel

// Project maps a score set onto radar points, one per question in declaration
// order. Max is always MaxRating.
func Project(q *Questionnaire, s ScoreSet) []ChartPoint {
	points := make([]ChartPoint, 0, NumQuestions)
	for i, qq := range q.Questions {
		points = append(points, ChartPoint{
			Subject: qq.Label,
			Value:   s[i],
			Max:     MaxRating,
		})
	}
	return points
}

// Answers pairs every question with its rating and band, in declaration order.
func Answers(q *Questionnaire, s ScoreSet) []Answer {
	answers := make([]Answer, 0, NumQuestions)
	for i, qq := range q.Questions {
		answers = append(answers, Answer{
			ID:     qq.ID,
			Label:  qq.Label,
			Prompt: qq.Prompt,
			Rating: s[i],
			Band:   BandFor(s[i]),
		})
	}
	return answers
}
