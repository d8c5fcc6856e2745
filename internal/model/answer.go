package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Answer is one quiz response. The concrete type follows the question type:
// SingleAnswer, MultipleAnswer or TextAnswer.
type Answer interface {
	Kind() QuestionType
	// String renders the answer for prompts and views; multiple values are joined with ", ".
	String() string
	answer()
}

type SingleAnswer string

type MultipleAnswer []string

type TextAnswer string

func (SingleAnswer) Kind() QuestionType   { return QuestionSingle }
func (MultipleAnswer) Kind() QuestionType { return QuestionMultiple }
func (TextAnswer) Kind() QuestionType     { return QuestionText }

func (a SingleAnswer) String() string   { return string(a) }
func (a MultipleAnswer) String() string { return strings.Join(a, ", ") }
func (a TextAnswer) String() string     { return string(a) }

func (SingleAnswer) answer()   {}
func (MultipleAnswer) answer() {}
func (TextAnswer) answer()     {}

// NewAnswer picks the answer variant for a question type from the submitted form values.
// Types other than multiple and text are read as a single value.
func NewAnswer(questionType QuestionType, values []string) Answer {
	switch questionType {
	case QuestionMultiple:
		out := make(MultipleAnswer, len(values))
		copy(out, values)
		return out
	case QuestionText:
		return TextAnswer(first(values))
	default:
		return SingleAnswer(first(values))
	}
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// Responses maps question ids to answers.
type Responses map[string]Answer

// Get returns the rendered answer for a question id, or "" when it was not answered.
func (r Responses) Get(questionID string) string {
	a, ok := r[questionID]
	if !ok || a == nil {
		return ""
	}
	return a.String()
}

type answerJSON struct {
	Type   QuestionType `json:"type"`
	Value  string       `json:"value,omitempty"`
	Values []string     `json:"values,omitempty"`
}

func (r Responses) MarshalJSON() ([]byte, error) {
	out := make(map[string]answerJSON, len(r))
	for id, a := range r {
		switch v := a.(type) {
		case MultipleAnswer:
			out[id] = answerJSON{Type: QuestionMultiple, Values: []string(v)}
		case TextAnswer:
			out[id] = answerJSON{Type: QuestionText, Value: string(v)}
		case SingleAnswer:
			out[id] = answerJSON{Type: QuestionSingle, Value: string(v)}
		case nil:
			continue
		default:
			return nil, fmt.Errorf("unsupported answer type %T for %s", a, id)
		}
	}
	return json.Marshal(out)
}

func (r *Responses) UnmarshalJSON(data []byte) error {
	var raw map[string]answerJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make(Responses, len(raw))
	for id, a := range raw {
		switch a.Type {
		case QuestionMultiple:
			out[id] = NewAnswer(QuestionMultiple, a.Values)
		case QuestionText:
			out[id] = TextAnswer(a.Value)
		case QuestionSingle:
			out[id] = SingleAnswer(a.Value)
		default:
			return fmt.Errorf("unknown answer type %q for %s", a.Type, id)
		}
	}
	*r = out
	return nil
}
