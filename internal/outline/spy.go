package outline

// Band is the viewport region in which a heading counts as current: from
// TopOffsetPx below the top edge down to BottomFraction of the viewport
// height. A heading must sit in the upper portion of the screen to be
// "the one being read."
type Band struct {
	TopOffsetPx    float64
	BottomFraction float64
}

// DefaultBand matches the site header: 100px below the top edge through
// the top 34% of the viewport.
func DefaultBand() Band {
	return Band{TopOffsetPx: 100, BottomFraction: 0.34}
}

// Contains reports whether a heading at y pixels from the viewport top is
// inside the band for a viewport of the given height.
func (b Band) Contains(y, viewportHeight float64) bool {
	return y >= b.TopOffsetPx && y <= viewportHeight*b.BottomFraction
}

// SpyState is the lifecycle state of a Spy.
type SpyState int

const (
	// SpyIdle means no document is being observed.
	SpyIdle SpyState = iota
	// SpyObserving means headings are registered but none is active yet.
	SpyObserving
	// SpyActive means one observed heading is highlighted.
	SpyActive
)

// Spy decides which heading is active. It is the decision half of a scroll
// spy: the browser-specific observation mechanism (an intersection observer
// over the Band) feeds it events, and it holds no reference to any DOM.
//
// Multiple headings can intersect the band during fast scrolling; the last
// observed one wins, which is the accepted behavior.
type Spy struct {
	observed map[string]struct{}
	active   string
	state    SpyState
}

// NewSpy returns an idle Spy with nothing observed.
func NewSpy() *Spy {
	return &Spy{observed: map[string]struct{}{}, state: SpyIdle}
}

// Observe replaces the observed heading set with headings, discarding the
// previous set and any active highlight. It must be called every time the
// displayed document changes so no observation outlives its document.
func (s *Spy) Observe(headings []Heading) {
	s.observed = make(map[string]struct{}, len(headings))
	for _, h := range headings {
		s.observed[h.ID] = struct{}{}
	}
	s.active = ""
	if len(s.observed) == 0 {
		s.state = SpyIdle
		return
	}
	s.state = SpyObserving
}

// Enter records that the heading with id entered the band. Unknown ids are
// ignored: no event is honored for a heading outside the current document.
// Reports whether the active heading changed.
func (s *Spy) Enter(id string) bool {
	if _, ok := s.observed[id]; !ok {
		return false
	}
	changed := s.active != id
	s.active = id
	s.state = SpyActive
	return changed
}

// Click activates id directly, bypassing the observer, so the highlight
// follows a TOC click without waiting for the scroll to land.
// Unknown ids are ignored.
func (s *Spy) Click(id string) bool {
	return s.Enter(id)
}

// ActiveID returns the currently active heading id, if any.
func (s *Spy) ActiveID() (string, bool) {
	return s.active, s.active != ""
}

// State returns the current lifecycle state.
func (s *Spy) State() SpyState {
	return s.state
}
