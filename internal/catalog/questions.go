package catalog

import (
	"fmt"

	"github.com/vitalvision/vitalvision/internal/textutil"
)

// Question pairs a yes/no prompt with the symptom it asks about. Symptom is
// the dataset column name an affirmative answer contributes.
type Question struct {
	Symptom string `yaml:"symptom" json:"symptom"`
	Prompt  string `yaml:"prompt" json:"prompt"`
}

// DefaultQuestions returns the built-in question bank in asking order.
func DefaultQuestions() []Question {
	return []Question{
		{Symptom: "fever", Prompt: "Are you experiencing fever?"},
		{Symptom: "fatigue", Prompt: "Do you feel fatigue or weakness?"},
		{Symptom: "headache", Prompt: "Do you have a headache?"},
		{Symptom: "cough", Prompt: "Do you have a cough?"},
		{Symptom: "difficulty_breathing", Prompt: "Is there any difficulty breathing?"},
		{Symptom: "runny_nose", Prompt: "Do you have a runny nose or sore throat?"},
		{Symptom: "stomach_pain", Prompt: "Do you have any stomach pain?"},
		{Symptom: "nausea", Prompt: "Have you experienced nausea or vomiting?"},
		{Symptom: "appetite_change", Prompt: "Any changes in appetite?"},
		{Symptom: "chest_pain", Prompt: "Are you experiencing chest pain?"},
		{Symptom: "shortness_of_breath", Prompt: "Do you have shortness of breath?"},
		{Symptom: "irregular_heartbeat", Prompt: "Any rapid or irregular heartbeat?"},
		{Symptom: "rash", Prompt: "Do you have any rash?"},
		{Symptom: "itching", Prompt: "Is there itching or swelling?"},
		{Symptom: "skin_changes", Prompt: "Have you noticed any skin changes?"},
	}
}

// NormalizeQuestions returns a copy of qs with symptom names folded to dataset
// column keys. It rejects empty fields and repeated symptoms.
func NormalizeQuestions(qs []Question) ([]Question, error) {
	if len(qs) == 0 {
		return nil, fmt.Errorf("question bank is empty")
	}
	out := make([]Question, len(qs))
	seen := make(map[string]int, len(qs))
	for i, q := range qs {
		sym := textutil.SymptomKey(q.Symptom)
		prompt := textutil.Normalize(q.Prompt)
		if sym == "" {
			return nil, fmt.Errorf("question %d: missing symptom", i+1)
		}
		if prompt == "" {
			return nil, fmt.Errorf("question %d (%s): missing prompt", i+1, sym)
		}
		if prev, dup := seen[sym]; dup {
			return nil, fmt.Errorf("question %d: symptom %q already asked by question %d", i+1, sym, prev+1)
		}
		seen[sym] = i
		out[i] = Question{Symptom: sym, Prompt: prompt}
	}
	return out, nil
}

// UnknownSymptoms returns the symptoms of qs that are not in known, in
// question order. Answers to such questions cannot influence a diagnosis.
func UnknownSymptoms(qs []Question, known []string) []string {
	set := make(map[string]bool, len(known))
	for _, k := range known {
		set[textutil.SymptomKey(k)] = true
	}
	var out []string
	for _, q := range qs {
		if !set[textutil.SymptomKey(q.Symptom)] {
			out = append(out, q.Symptom)
		}
	}
	return out
}
