package wheel

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidIdentifier is returned for a question id outside the questionnaire.
	ErrInvalidIdentifier = errors.New("invalid question identifier")
	// ErrOutOfRange is returned for a rating outside [MinRating, MaxRating] or one that is not an integer.
	ErrOutOfRange = errors.New("rating out of range")
)

// RatingError describes a rejected rating update.
type RatingError struct {
	ID    string
	Value string
	Err   error
}

func (e *RatingError) Error() string {
	return fmt.Sprintf("%s=%s: %v", e.ID, e.Value, e.Err)
}

func (e *RatingError) Unwrap() error { return e.Err }

// Store holds the current rating of every question.
// A Store is owned by a single caller and is not safe for concurrent use.
type Store struct {
	questions *Questionnaire
	scores    ScoreSet
}

// NewStore returns a store with every question at DefaultRating.
func NewStore(q *Questionnaire) *Store {
	return &Store{questions: q, scores: Uniform(DefaultRating)}
}

// Questionnaire returns the questionnaire the store was built for.
func (s *Store) Questionnaire() *Questionnaire { return s.questions }

// Scores returns a copy of the current ratings.
func (s *Store) Scores() ScoreSet { return s.scores }

// Rating returns the current rating of the question with the given id.
func (s *Store) Rating(id string) (int, error) {
	i, ok := s.questions.Index(id)
	if !ok {
		return 0, &RatingError{ID: id, Value: "?", Err: ErrInvalidIdentifier}
	}
	return s.scores[i], nil
}

// SetRating replaces the rating of one question. Unknown ids and values outside
// [MinRating, MaxRating] are rejected and leave the store unchanged.
func (s *Store) SetRating(id string, value int) error {
	i, ok := s.questions.Index(id)
	if !ok {
		return &RatingError{ID: id, Value: strconv.Itoa(value), Err: ErrInvalidIdentifier}
	}
	if value < MinRating || value > MaxRating {
		return &RatingError{ID: id, Value: strconv.Itoa(value), Err: ErrOutOfRange}
	}
	s.scores[i] = value
	return nil
}

// SetRatingText parses raw as a base-10 integer and applies it with SetRating.
// Text that does not parse is rejected as ErrOutOfRange.
func (s *Store) SetRatingText(id, raw string) error {
	if _, ok := s.questions.Index(id); !ok {
		return &RatingError{ID: id, Value: raw, Err: ErrInvalidIdentifier}
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return &RatingError{ID: id, Value: raw, Err: ErrOutOfRange}
	}
	return s.SetRating(id, v)
}
