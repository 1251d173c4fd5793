package grid

// State is the filter and page selection shared through the URL fragment.
type State struct {
	Tag  string
	Page int
}

// DefaultState shows every post from the first page.
func DefaultState() State {
	return State{Tag: AllTags, Page: 1}
}

// ActionKind names a state transition.
type ActionKind int

const (
	// ActionInit replaces the state with the one encoded in Fragment.
	ActionInit ActionKind = iota
	// ActionSelectTag switches the filter and returns to page 1.
	ActionSelectTag
	// ActionGoToPage moves to Page within the current filter.
	ActionGoToPage
)

// Action is a single user or load event.
type Action struct {
	Kind     ActionKind
	Tag      string
	Page     int
	Fragment string
}

// SelectTag builds a tag click action.
func SelectTag(tag string) Action {
	return Action{Kind: ActionSelectTag, Tag: tag}
}

// GoToPage builds a page click action.
func GoToPage(page int) Action {
	return Action{Kind: ActionGoToPage, Page: page}
}

// Init builds the initial load action for a fragment.
func Init(fragment string) Action {
	return Action{Kind: ActionInit, Fragment: fragment}
}

// Reduce applies a to s. Page clamping is left to Resolve, which knows the
// filtered post count.
func Reduce(s State, a Action) State {
	switch a.Kind {
	case ActionInit:
		return DecodeFragment(a.Fragment)
	case ActionSelectTag:
		tag := Norm(a.Tag)
		if tag == "" {
			tag = AllTags
		}
		return State{Tag: tag, Page: 1}
	case ActionGoToPage:
		return State{Tag: s.Tag, Page: a.Page}
	}
	return s
}

// Resolve derives the view for s and writes the clamped page back, so a
// filter that shrank the result set never leaves the state out of range.
func Resolve(posts []Post, s State, size int) (State, View) {
	v := DeriveView(posts, s, size)
	s.Page = v.Current
	return s, v
}
