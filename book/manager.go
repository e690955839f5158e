package book

import (
	"property-matcher/models"
	"property-matcher/services"
	"property-matcher/utils"
)

// MatchSource derives the match view from the current book.
type MatchSource func(ab *AddressBook) []models.Match

// View is a read-only snapshot of everything a presentation layer shows.
type View struct {
	Properties []models.Property
	Buyers     []models.Buyer
	Matches    []models.Match
}

// Manager is the single mutation point for the address book. Filtered views
// and the match view are recomputed on every read, so a read after a
// mutation always reflects it. Subscribers are notified only from Publish.
type Manager struct {
	book   *AddressBook
	logger *utils.Logger

	propertyFilter services.Predicate[models.Property]
	buyerFilter    services.Predicate[models.Buyer]
	matchSource    MatchSource
	// At most one of these is set: the entity a focused match view follows.
	focusProperty *models.Property
	focusBuyer    *models.Buyer

	listeners []func(View)
	dirty     bool
}

func NewManager(ab *AddressBook, logger *utils.Logger) *Manager {
	if ab == nil {
		ab = NewAddressBook()
	}
	if logger == nil {
		logger = utils.NewNopLogger()
	}
	return &Manager{
		book:           ab,
		logger:         logger,
		propertyFilter: services.All[models.Property](),
		buyerFilter:    services.All[models.Buyer](),
	}
}

// AddressBook returns a copy of the current state, safe to hand to storage.
func (m *Manager) AddressBook() *AddressBook {
	return m.book.Copy()
}

// ResetAddressBook replaces all data and clears filters.
func (m *Manager) ResetAddressBook(ab *AddressBook) {
	if ab == nil {
		ab = NewAddressBook()
	}
	m.book = ab.Copy()
	m.propertyFilter = services.All[models.Property]()
	m.buyerFilter = services.All[models.Buyer]()
	m.markDirty()
}

// =========== Properties ===========

func (m *Manager) HasProperty(p models.Property) bool { return m.book.HasProperty(p) }

func (m *Manager) AddProperty(p models.Property) error {
	if err := m.book.AddProperty(p); err != nil {
		return err
	}
	m.logger.Debug("[book] Added property %q", p.Name())
	// Adding always returns to the unfiltered list.
	m.propertyFilter = services.All[models.Property]()
	m.markDirty()
	return nil
}

func (m *Manager) SetProperty(target, edited models.Property) error {
	if err := m.book.SetProperty(target, edited); err != nil {
		return err
	}
	m.logger.Debug("[book] Replaced property %q with %q", target.Name(), edited.Name())
	if m.focusProperty != nil && m.focusProperty.IsSame(target) {
		m.focusProperty = &edited
	}
	m.markDirty()
	return nil
}

func (m *Manager) DeleteProperty(p models.Property) error {
	if err := m.book.RemoveProperty(p); err != nil {
		return err
	}
	m.logger.Debug("[book] Deleted property %q", p.Name())
	m.markDirty()
	return nil
}

func (m *Manager) SortProperties(less func(a, b models.Property) bool) {
	m.book.SortProperties(less)
	m.markDirty()
}

// FilteredProperties is the property list as currently displayed.
func (m *Manager) FilteredProperties() []models.Property {
	return services.Filter(m.book.Properties(), m.propertyFilter)
}

func (m *Manager) UpdatePropertyFilter(pred services.Predicate[models.Property]) {
	if pred == nil {
		pred = services.All[models.Property]()
	}
	m.propertyFilter = pred
	m.markDirty()
}

// =========== Buyers ===========

func (m *Manager) HasBuyer(b models.Buyer) bool { return m.book.HasBuyer(b) }

func (m *Manager) AddBuyer(b models.Buyer) error {
	if err := m.book.AddBuyer(b); err != nil {
		return err
	}
	m.logger.Debug("[book] Added buyer %q", b.Name())
	m.buyerFilter = services.All[models.Buyer]()
	m.markDirty()
	return nil
}

func (m *Manager) SetBuyer(target, edited models.Buyer) error {
	if err := m.book.SetBuyer(target, edited); err != nil {
		return err
	}
	m.logger.Debug("[book] Replaced buyer %q with %q", target.Name(), edited.Name())
	if m.focusBuyer != nil && m.focusBuyer.IsSame(target) {
		m.focusBuyer = &edited
	}
	m.markDirty()
	return nil
}

func (m *Manager) DeleteBuyer(b models.Buyer) error {
	if err := m.book.RemoveBuyer(b); err != nil {
		return err
	}
	m.logger.Debug("[book] Deleted buyer %q", b.Name())
	m.markDirty()
	return nil
}

func (m *Manager) SortBuyers(less func(a, b models.Buyer) bool) {
	m.book.SortBuyers(less)
	m.markDirty()
}

func (m *Manager) FilteredBuyers() []models.Buyer {
	return services.Filter(m.book.Buyers(), m.buyerFilter)
}

func (m *Manager) UpdateBuyerFilter(pred services.Predicate[models.Buyer]) {
	if pred == nil {
		pred = services.All[models.Buyer]()
	}
	m.buyerFilter = pred
	m.markDirty()
}

// =========== Matches ===========

// ShowMatches installs the source of the match view. A nil source hides it.
func (m *Manager) ShowMatches(source MatchSource) {
	m.focusProperty, m.focusBuyer = nil, nil
	m.matchSource = source
	m.markDirty()
}

// ShowPropertyMatches focuses the match view on p. The view follows p
// through later edits made with SetProperty, renames included.
func (m *Manager) ShowPropertyMatches(p models.Property) {
	m.ShowMatches(func(ab *AddressBook) []models.Match {
		return MatchesForProperty(*m.focusProperty)(ab)
	})
	m.focusProperty = &p
}

// ShowBuyerMatches focuses the match view on b and follows it through
// SetBuyer.
func (m *Manager) ShowBuyerMatches(b models.Buyer) {
	m.ShowMatches(func(ab *AddressBook) []models.Match {
		return MatchesForBuyer(*m.focusBuyer)(ab)
	})
	m.focusBuyer = &b
}

// Matches recomputes the match view from the current book. A shown view is
// never nil, even when it holds no matches.
func (m *Manager) Matches() []models.Match {
	if m.matchSource == nil {
		return nil
	}
	matches := m.matchSource(m.book)
	if matches == nil {
		return []models.Match{}
	}
	return matches
}

// =========== Observers ===========

// Subscribe registers fn to receive a View whenever Publish finds changes.
func (m *Manager) Subscribe(fn func(View)) {
	m.listeners = append(m.listeners, fn)
}

// Publish notifies subscribers if anything changed since the last Publish.
func (m *Manager) Publish() {
	if !m.dirty {
		return
	}
	m.dirty = false
	if len(m.listeners) == 0 {
		return
	}
	v := m.View()
	for _, fn := range m.listeners {
		fn(v)
	}
}

// View returns a fresh snapshot of the filtered lists and matches.
func (m *Manager) View() View {
	return View{
		Properties: m.FilteredProperties(),
		Buyers:     m.FilteredBuyers(),
		Matches:    m.Matches(),
	}
}

func (m *Manager) markDirty() {
	m.dirty = true
}

// AllMatches ranks the full cross product of the book.
func AllMatches(ab *AddressBook) []models.Match {
	return services.RankMatches(ab.Properties(), ab.Buyers())
}

// MatchesForBuyer follows the buyer by identity, so the view stays valid
// when its other fields are edited.
func MatchesForBuyer(buyer models.Buyer) MatchSource {
	return func(ab *AddressBook) []models.Match {
		for _, b := range ab.Buyers() {
			if b.IsSame(buyer) {
				return services.MatchesForBuyer(b, ab.Properties())
			}
		}
		return nil
	}
}

// MatchesForProperty follows the property by identity.
func MatchesForProperty(property models.Property) MatchSource {
	return func(ab *AddressBook) []models.Match {
		for _, p := range ab.Properties() {
			if p.IsSame(property) {
				return services.MatchesForProperty(p, ab.Buyers())
			}
		}
		return nil
	}
}
