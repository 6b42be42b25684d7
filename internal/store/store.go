// Package store holds the authoritative in-memory graph of conversations,
// orders, shopping carts, airs and profiles.
//
// Entities are created lazily when a request references an unknown id and
// are never deleted; the store's lifetime equals the process lifetime. A
// single mutex serializes every mutation, and a global revision counter is
// bumped exactly once per logical state change. The revision is the only
// ordering signal exposed to callers.
package store

import (
	"strings"
	"sync"

	"github.com/ots-platform/ibe-mock/internal/ids"
	"github.com/ots-platform/ibe-mock/internal/model"
	"github.com/ots-platform/ibe-mock/internal/reqctx"
)

// Bundle ties the deterministic (order, cart, air) triple created for one
// search key, so a repeated search resolves to the same entities.
type Bundle struct {
	OrderID        string
	ShoppingCartID string
	AirID          string
}

// Store is the process-wide entity store. Construct with New and inject by
// reference; each test builds its own instance.
type Store struct {
	mu  sync.Mutex
	rev int

	conversations map[string]*model.Conversation
	orders        map[string]*model.Order
	carts         map[string]*model.ShoppingCart
	airs          map[string]*model.Air
	profiles      map[string]*model.Profile
	bundles       map[string]Bundle
}

// New returns an empty store.
func New() *Store {
	return &Store{
		conversations: make(map[string]*model.Conversation),
		orders:        make(map[string]*model.Order),
		carts:         make(map[string]*model.ShoppingCart),
		airs:          make(map[string]*model.Air),
		profiles:      make(map[string]*model.Profile),
		bundles:       make(map[string]Bundle),
	}
}

func (s *Store) bump() int {
	s.rev++
	return s.rev
}

// GlobalRevision reports the current revision without bumping it.
func (s *Store) GlobalRevision() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rev
}

// EnsureConversation returns the conversation for rc, creating it on first
// reference. The second return reports whether it was created.
func (s *Store) EnsureConversation(rc *reqctx.Context) (*model.Conversation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ensureConversationLocked(rc)
}

func (s *Store) ensureConversationLocked(rc *reqctx.Context) (*model.Conversation, bool) {
	if existing, ok := s.conversations[rc.ConversationID]; ok {
		existing.UpdatedAt = ids.NowUTC()
		return existing, false
	}
	now := ids.NowUTC()
	conv := &model.Conversation{
		ConversationID: rc.ConversationID,
		Application:    rc.Application,
		Flow:           rc.Flow,
		Locale:         rc.Locale,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	s.conversations[rc.ConversationID] = conv
	s.bump()
	return conv, true
}

// EnsureOrder returns the order with the given id, creating a DRAFT order
// owned by rc's conversation on first reference.
func (s *Store) EnsureOrder(orderID string, rc *reqctx.Context) (*model.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ensureOrderLocked(orderID, rc)
}

func (s *Store) ensureOrderLocked(orderID string, rc *reqctx.Context) (*model.Order, bool) {
	if existing, ok := s.orders[orderID]; ok {
		existing.UpdatedAt = ids.NowUTC()
		return existing, false
	}
	now := ids.NowUTC()
	order := &model.Order{
		OrderID:        orderID,
		ConversationID: rc.ConversationID,
		Currency:       "USD",
		Status:         model.OrderStatusDraft,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	order.Revision = s.bump()
	s.orders[orderID] = order
	return order, true
}

// EnsureShoppingCart returns the cart with the given id, creating an OPEN
// cart owned by orderID on first reference.
func (s *Store) EnsureShoppingCart(orderID, cartID string) (*model.ShoppingCart, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ensureCartLocked(orderID, cartID)
}

func (s *Store) ensureCartLocked(orderID, cartID string) (*model.ShoppingCart, bool) {
	if existing, ok := s.carts[cartID]; ok {
		existing.UpdatedAt = ids.NowUTC()
		return existing, false
	}
	now := ids.NowUTC()
	cart := &model.ShoppingCart{
		ShoppingCartID: cartID,
		OrderID:        orderID,
		Status:         model.CartStatusOpen,
		Step:           model.StepFlightsSearch,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	cart.Revision = s.bump()
	s.carts[cartID] = cart
	return cart, true
}

// EnsureAir returns the air with the given id, creating it on first
// reference. EnsureFromRequest additionally links a created air into its
// cart's selected airs.
func (s *Store) EnsureAir(orderID, cartID, airID string) (*model.Air, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ensureAirLocked(orderID, cartID, airID)
}

func (s *Store) ensureAirLocked(orderID, cartID, airID string) (*model.Air, bool) {
	if existing, ok := s.airs[airID]; ok {
		existing.UpdatedAt = ids.NowUTC()
		return existing, false
	}
	now := ids.NowUTC()
	air := &model.Air{
		AirID:          airID,
		OrderID:        orderID,
		ShoppingCartID: cartID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	air.Revision = s.bump()
	s.airs[airID] = air
	return air, true
}

// EnsureProfile returns the profile with the given id, creating an inert
// placeholder on first reference.
func (s *Store) EnsureProfile(profileID string) (*model.Profile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ensureProfileLocked(profileID)
}

func (s *Store) ensureProfileLocked(profileID string) (*model.Profile, bool) {
	if existing, ok := s.profiles[profileID]; ok {
		existing.UpdatedAt = ids.NowUTC()
		return existing, false
	}
	now := ids.NowUTC()
	p := &model.Profile{ProfileID: profileID, CreatedAt: now, UpdatedAt: now}
	s.profiles[profileID] = p
	s.bump()
	return p, true
}

func pathParam(vars map[string]string, names ...string) string {
	for _, n := range names {
		if v := strings.TrimSpace(vars[n]); v != "" {
			return v
		}
	}
	return ""
}

// EnsureFromRequest ensures every entity referenced by common path
// parameters exists, in strict dependency order: conversation, then order,
// then cart, then air. Blank or absent identifiers end the chain rather
// than erroring. Each created entity yields one AUTO_CREATED warning; a
// created air is also linked into its cart's selected airs.
func (s *Store) EnsureFromRequest(rc *reqctx.Context, vars map[string]string) []model.Warning {
	s.mu.Lock()
	defer s.mu.Unlock()

	var warnings []model.Warning

	if _, created := s.ensureConversationLocked(rc); created {
		warnings = append(warnings, model.NewWarning(model.WarnAutoCreated,
			"Conversation was auto-created by mock.",
			map[string]any{"conversationId": rc.ConversationID}))
	}

	orderID := pathParam(vars, "orderId", "order_id")
	cartID := pathParam(vars, "shoppingCartId", "shopping_cart_id")
	airID := pathParam(vars, "airId", "air_id")
	profileID := pathParam(vars, "profileId", "profile_id")

	if orderID != "" {
		if _, created := s.ensureOrderLocked(orderID, rc); created {
			warnings = append(warnings, model.NewWarning(model.WarnAutoCreated,
				"Order was auto-created by mock.",
				map[string]any{"orderId": orderID}))
		}
	}

	if orderID != "" && cartID != "" {
		if _, created := s.ensureCartLocked(orderID, cartID); created {
			warnings = append(warnings, model.NewWarning(model.WarnAutoCreated,
				"Shopping cart was auto-created by mock.",
				map[string]any{"orderId": orderID, "shoppingCartId": cartID}))
		}
	}

	if orderID != "" && cartID != "" && airID != "" {
		air, created := s.ensureAirLocked(orderID, cartID, airID)
		cart, _ := s.ensureCartLocked(orderID, cartID)
		if linkAir(cart, air.AirID) {
			cart.Revision = s.bump()
		}
		if created {
			warnings = append(warnings, model.NewWarning(model.WarnAutoCreated,
				"Air was auto-created by mock.",
				map[string]any{"orderId": orderID, "shoppingCartId": cartID, "airId": airID}))
		}
	}

	if profileID != "" {
		if _, created := s.ensureProfileLocked(profileID); created {
			warnings = append(warnings, model.NewWarning(model.WarnAutoCreated,
				"Profile was auto-created by mock.",
				map[string]any{"profileId": profileID}))
		}
	}

	return warnings
}

// linkAir appends airID to the cart's selected airs unless already present.
// Reports whether the cart changed.
func linkAir(cart *model.ShoppingCart, airID string) bool {
	for _, id := range cart.SelectedAirs {
		if id == airID {
			return false
		}
	}
	cart.SelectedAirs = append(cart.SelectedAirs, airID)
	return true
}

// UpdateShoppingCart runs fn on the cart (creating it if needed) under the
// store lock, then bumps its revision and refreshes its UpdatedAt stamp.
// All read-modify-write sequences on a cart go through here so concurrent
// requests never see a half-applied mutation.
func (s *Store) UpdateShoppingCart(orderID, cartID string, fn func(*model.ShoppingCart)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart, _ := s.ensureCartLocked(orderID, cartID)
	fn(cart)
	cart.Revision = s.bump()
	cart.UpdatedAt = ids.NowUTC()
}

// UpdateAir is UpdateShoppingCart for airs.
func (s *Store) UpdateAir(orderID, cartID, airID string, fn func(*model.Air)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	air, _ := s.ensureAirLocked(orderID, cartID, airID)
	fn(air)
	air.Revision = s.bump()
	air.UpdatedAt = ids.NowUTC()
}

// UpdateEntities runs fn on the order, cart and air together under one lock
// acquisition. Entities that do not exist are passed as nil and nothing is
// created; revisions and UpdatedAt stamps on the order and cart move only
// when the cart exists. The pricing engine uses this to read ancillaries and
// write totals atomically.
func (s *Store) UpdateEntities(orderID, cartID, airID string, fn func(*model.Order, *model.ShoppingCart, *model.Air)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order := s.orders[orderID]
	cart := s.carts[cartID]
	air := s.airs[airID]
	fn(order, cart, air)
	if cart == nil {
		return
	}
	now := ids.NowUTC()
	cart.Revision = s.bump()
	cart.UpdatedAt = now
	if order != nil {
		order.Revision = s.bump()
		order.UpdatedAt = now
	}
}

// ViewOrder runs fn on the order under the store lock without creating it or
// bumping revisions. It reports whether the order exists.
func (s *Store) ViewOrder(orderID string, fn func(*model.Order)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[orderID]
	if ok {
		fn(o)
	}
	return ok
}

// ViewShoppingCart is ViewOrder for carts.
func (s *Store) ViewShoppingCart(cartID string, fn func(*model.ShoppingCart)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[cartID]
	if ok {
		fn(c)
	}
	return ok
}

// ViewAir is ViewOrder for airs.
func (s *Store) ViewAir(airID string, fn func(*model.Air)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.airs[airID]
	if ok {
		fn(a)
	}
	return ok
}

// Order looks up an order without creating it.
func (s *Store) Order(orderID string) (*model.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[orderID]
	return o, ok
}

// ShoppingCart looks up a cart without creating it.
func (s *Store) ShoppingCart(cartID string) (*model.ShoppingCart, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[cartID]
	return c, ok
}

// Air looks up an air without creating it.
func (s *Store) Air(airID string) (*model.Air, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.airs[airID]
	return a, ok
}

// LinkAir records airID on the cart's selected airs and as the order's
// added air, bumping the revision once if anything changed.
func (s *Store) LinkAir(rc *reqctx.Context, orderID, cartID, airID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, _ := s.ensureOrderLocked(orderID, rc)
	cart, _ := s.ensureCartLocked(orderID, cartID)

	changed := linkAir(cart, airID)
	if order.AddedAirID != airID {
		order.AddedAirID = airID
		changed = true
	}
	if changed {
		s.bump()
	}
}

// ResolveAir returns the air currently of interest for the (order, cart)
// pair: the order's cached added air first, then the cart's first selected
// air, otherwise a deterministic air created and linked on the spot.
func (s *Store) ResolveAir(rc *reqctx.Context, orderID, cartID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, _ := s.ensureOrderLocked(orderID, rc)
	if order.AddedAirID != "" {
		return order.AddedAirID
	}

	cart, _ := s.ensureCartLocked(orderID, cartID)
	if len(cart.SelectedAirs) > 0 {
		return cart.SelectedAirs[0]
	}

	airID := ids.StableID("air", orderID+"|"+cartID, 16)
	s.ensureAirLocked(orderID, cartID, airID)
	linkAir(cart, airID)
	order.AddedAirID = airID
	s.bump()
	return airID
}

// SearchBundle returns the memoized (order, cart, air) triple for a search
// key, if one was recorded for rc's conversation.
func (s *Store) SearchBundle(rc *reqctx.Context, searchKey string) (Bundle, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bundles[rc.ConversationID+"|"+searchKey]
	return b, ok
}

// EnsureSearchBundle records the triple for a search key so later searches
// with the same parameters land on the same entities.
func (s *Store) EnsureSearchBundle(rc *reqctx.Context, searchKey string, b Bundle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := rc.ConversationID + "|" + searchKey
	if _, ok := s.bundles[key]; ok {
		return
	}
	s.bundles[key] = b
	s.bump()
}
