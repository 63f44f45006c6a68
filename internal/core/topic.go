package core

// Difficulty is a difficulty label shown on topics, patterns and problems.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"

	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Link points at a problem on an external judge.
type Link struct {
	Platform string `json:"platform" yaml:"platform" validate:"required"`
	URL      string `json:"url" yaml:"url" validate:"required,url"`
}

// CodeExample is a code blob with a guided walkthrough.
type CodeExample struct {
	Title         string        `json:"title" yaml:"title" validate:"required"`
	Language      string        `json:"language,omitempty" yaml:"language,omitempty"`
	Code          string        `json:"code" yaml:"code"`
	Steps         StepSequence  `json:"steps,omitempty" yaml:"steps,omitempty"`
	Highlights    map[int][]int `json:"highlights,omitempty" yaml:"highlights,omitempty"`
	Visualization string        `json:"visualization,omitempty" yaml:"visualization,omitempty"`
}

// Pattern is a reusable problem-solving technique.
type Pattern struct {
	Name            string     `json:"name" yaml:"name" validate:"required"`
	Difficulty      Difficulty `json:"difficulty,omitempty" yaml:"difficulty,omitempty" validate:"omitempty,oneof=Easy Medium Hard"`
	Description     string     `json:"description" yaml:"description"`
	WhenToUse       []string   `json:"when_to_use,omitempty" yaml:"when_to_use,omitempty"`
	Example         string     `json:"example,omitempty" yaml:"example,omitempty"`
	TimeComplexity  string     `json:"time_complexity,omitempty" yaml:"time_complexity,omitempty"`
	SpaceComplexity string     `json:"space_complexity,omitempty" yaml:"space_complexity,omitempty"`
}

// Problem is a practice problem hosted on one or more judges.
type Problem struct {
	Title           string     `json:"title" yaml:"title" validate:"required"`
	Difficulty      Difficulty `json:"difficulty" yaml:"difficulty" validate:"omitempty,oneof=Easy Medium Hard"`
	Rating          float64    `json:"rating,omitempty" yaml:"rating,omitempty" validate:"gte=0,lte=5"`
	Description     string     `json:"description" yaml:"description"`
	Concepts        []string   `json:"concepts,omitempty" yaml:"concepts,omitempty"`
	Hints           []string   `json:"hints,omitempty" yaml:"hints,omitempty"`
	Links           []Link     `json:"links,omitempty" yaml:"links,omitempty" validate:"dive"`
	Solution        string     `json:"solution,omitempty" yaml:"solution,omitempty"`
	Explanation     string     `json:"explanation,omitempty" yaml:"explanation,omitempty"`
	TimeComplexity  string     `json:"time_complexity,omitempty" yaml:"time_complexity,omitempty"`
	SpaceComplexity string     `json:"space_complexity,omitempty" yaml:"space_complexity,omitempty"`
}

// Topic is a single DSA subject page.
type Topic struct {
	ID               string        `json:"id" yaml:"id" validate:"required,topicid"`
	Title            string        `json:"title" yaml:"title" validate:"required"`
	Difficulty       Difficulty    `json:"difficulty" yaml:"difficulty" validate:"required,oneof=Beginner Intermediate Advanced"`
	EstimatedTime    string        `json:"estimated_time,omitempty" yaml:"estimated_time,omitempty"`
	Concepts         int           `json:"concepts" yaml:"concepts" validate:"gte=0"`
	Problems         int           `json:"problems,omitempty" yaml:"problems,omitempty" validate:"gte=0"`
	Tags             []string      `json:"tags" yaml:"tags"`
	Description      string        `json:"description" yaml:"description"`
	Explanation      string        `json:"explanation,omitempty" yaml:"explanation,omitempty"`
	ExplanationSteps StepSequence  `json:"explanation_steps,omitempty" yaml:"explanation_steps,omitempty"`
	CodeExamples     []CodeExample `json:"code_examples,omitempty" yaml:"code_examples,omitempty" validate:"dive"`
	Patterns         []Pattern     `json:"patterns,omitempty" yaml:"patterns,omitempty" validate:"dive"`
	ProblemSet       []Problem     `json:"problem_set,omitempty" yaml:"problem_set,omitempty" validate:"dive"`
}

// Example returns the i-th code example.
func (t *Topic) Example(i int) (CodeExample, bool) {
	if t == nil || i < 0 || i >= len(t.CodeExamples) {
		return CodeExample{}, false
	}
	return t.CodeExamples[i], true
}

// Problem returns the i-th problem of the problem set.
func (t *Topic) Problem(i int) (Problem, bool) {
	if t == nil || i < 0 || i >= len(t.ProblemSet) {
		return Problem{}, false
	}
	return t.ProblemSet[i], true
}

// HasSteps returns true if the topic carries a guided explanation.
func (t *Topic) HasSteps() bool {
	return t != nil && len(t.ExplanationSteps) > 0
}
