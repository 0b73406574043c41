package domain

// Step is one instruction of a recipe. Its position in the owning
// StepRegister is the step number.
type Step struct {
	Model
	text string
}

func NewStep(text string) *Step {
	return &Step{Model: generatedModel(), text: text}
}

func (s *Step) Text() string { return s.text }
