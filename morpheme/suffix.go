package morpheme

// SuffixGroup tags mutually exclusive suffixes: at most one member of a
// group may apply between two derivational boundaries.
type SuffixGroup struct {
	Name string
}

// NewGroup returns a suffix group.
func NewGroup(name string) *SuffixGroup {
	return &SuffixGroup{Name: name}
}

// Suffix is a named morphological rule with one or more surface forms.
type Suffix struct {
	Name string
	// Group is nil for suffixes without mutual exclusion.
	Group *SuffixGroup
	// Pretty is the name used in formatted results. Empty for free
	// transitions that do not show up.
	Pretty string
	// AllowRepetition lets a derivational suffix follow itself directly
	// (causative on causative).
	AllowRepetition bool

	forms []*SuffixForm
}

// NewSuffix returns a suffix without forms.
func NewSuffix(name string, group *SuffixGroup, pretty string) *Suffix {
	return &Suffix{Name: name, Group: group, Pretty: pretty}
}

// AddForm registers a new form of s and returns s for chaining.
func (s *Suffix) AddForm(template string, opts ...FormOption) *Suffix {
	s.forms = append(s.forms, NewForm(s, template, opts...))
	return s
}

// Forms returns the registered forms in order. The slice is shared and must
// not be modified.
func (s *Suffix) Forms() []*SuffixForm {
	return s.forms
}

func (s *Suffix) String() string {
	return s.Name
}

// SuffixForm is one templated spelling of a suffix, e.g. "+yAcAk".
type SuffixForm struct {
	Suffix   *Suffix
	Template string

	// Precondition is checked against the container before the form is
	// applied.
	Precondition Condition
	// Postcondition is checked against the container produced by the next
	// transition, so a form can reject what follows it.
	Postcondition Condition
	// PostDerivationCondition is checked when the parse leaves the next
	// derivational state, against the container holding the derivation.
	PostDerivationCondition Condition
}

// FormOption sets an optional condition on a SuffixForm.
type FormOption func(*SuffixForm)

// Pre sets the precondition.
func Pre(c Condition) FormOption {
	return func(f *SuffixForm) { f.Precondition = c }
}

// Post sets the postcondition.
func Post(c Condition) FormOption {
	return func(f *SuffixForm) { f.Postcondition = c }
}

// PostDerivation sets the post-derivation condition.
func PostDerivation(c Condition) FormOption {
	return func(f *SuffixForm) { f.PostDerivationCondition = c }
}

// NewForm returns a form of suffix that is not registered on it. Predefined
// paths use it for literal, irregular spellings.
func NewForm(suffix *Suffix, template string, opts ...FormOption) *SuffixForm {
	f := &SuffixForm{Suffix: suffix, Template: template}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *SuffixForm) String() string {
	return f.Suffix.Name + "(" + f.Template + ")"
}
