// Package wheel defines the core types of a performance wheel assessment:
// the fixed questionnaire, the score store, the aggregate and the chart projection.
package wheel

const (
	// NumQuestions is the fixed number of axes on the wheel.
	NumQuestions = 10
	// MinRating and MaxRating bound every rating, inclusive.
	MinRating = 0
	MaxRating = 10
	// DefaultRating is the rating every question starts with.
	DefaultRating = 5
)

// Question is one axis of the wheel.
type Question struct {
	ID     string `json:"id" yaml:"id"`
	Label  string `json:"label" yaml:"label"`
	Prompt string `json:"prompt" yaml:"prompt"`
}

// Questionnaire is the ordered, immutable set of questions a wheel is built from.
// Array order is declaration order and fixes the angular position of each axis.
type Questionnaire struct {
	Name      string                 `json:"name"`
	Title     string                 `json:"title"`
	Subtitle  string                 `json:"subtitle,omitempty"`
	Footer    string                 `json:"footer,omitempty"`
	Questions [NumQuestions]Question `json:"questions"`
}

// Index returns the position of the question with the given id.
func (q *Questionnaire) Index(id string) (int, bool) {
	for i := range q.Questions {
		if q.Questions[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

// IDs returns the question ids in declaration order.
func (q *Questionnaire) IDs() []string {
	ids := make([]string, 0, NumQuestions)
	for _, qq := range q.Questions {
		ids = append(ids, qq.ID)
	}
	return ids
}

// ScoreSet holds one rating per question, aligned with Questionnaire.Questions.
type ScoreSet [NumQuestions]int

// Uniform returns a score set with every rating set to v.
func Uniform(v int) ScoreSet {
	var s ScoreSet
	for i := range s {
		s[i] = v
	}
	return s
}

// Sum returns the total of all ratings.
func (s ScoreSet) Sum() int {
	total := 0
	for _, v := range s {
		total += v
	}
	return total
}

// Aggregate is the rounded mean of a score set and its tier.
type Aggregate struct {
	Mean float64 `json:"mean"`
	Tier Tier    `json:"tier"`
}

// ChartPoint is one radar axis: the question label, its rating and the scale bound.
type ChartPoint struct {
	Subject string `json:"subject"`
	Value   int    `json:"value"`
	Max     int    `json:"max"`
}

// Answer pairs a question with its current rating.
type Answer struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Prompt string `json:"prompt"`
	Rating int    `json:"rating"`
	Band   Band   `json:"band"`
}

// Summary is the text-ready view of an Aggregate.
type Summary struct {
	Mean     float64 `json:"mean"`
	MeanText string  `json:"mean_text"`
	Tier     Tier    `json:"tier"`
	Label    string  `json:"label"`
	Class    string  `json:"class"`
}

// Insights holds reading aids derived from the shape of the wheel.
type Insights struct {
	Levers   []string `json:"levers"`
	Spread   int      `json:"spread"`
	Balanced bool     `json:"balanced"`
}

// Assessment is everything the presenter needs for one render.
type Assessment struct {
	Summary  Summary      `json:"summary"`
	Points   []ChartPoint `json:"points"`
	Answers  []Answer     `json:"answers"`
	Insights Insights     `json:"insights"`
}
