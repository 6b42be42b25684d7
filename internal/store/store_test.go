package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ots-platform/ibe-mock/internal/model"
	"github.com/ots-platform/ibe-mock/internal/reqctx"
)

func testCtx(conv string) *reqctx.Context {
	return &reqctx.Context{
		Application:    "IBE",
		Flow:           "revenue",
		Locale:         "en",
		ConversationID: conv,
	}
}

func TestEnsureOrderIdempotent(t *testing.T) {
	s := New()
	rc := testCtx("conv-1")

	before := s.GlobalRevision()
	first, created := s.EnsureOrder("ord-1", rc)
	require.True(t, created)

	second, created := s.EnsureOrder("ord-1", rc)
	assert.False(t, created)
	assert.Same(t, first, second)
	// A repeated ensure only touches the timestamp, not the revision.
	assert.Equal(t, before+1, s.GlobalRevision())
	assert.Equal(t, model.OrderStatusDraft, first.Status)
	assert.Equal(t, "USD", first.Currency)
}

func TestEnsureConversationKeepsHeaderValues(t *testing.T) {
	s := New()
	conv, created := s.EnsureConversation(testCtx("conv-9"))
	require.True(t, created)
	assert.Equal(t, "revenue", conv.Flow)

	again, created := s.EnsureConversation(testCtx("conv-9"))
	assert.False(t, created)
	assert.Same(t, conv, again)
}

func TestUpdateAirBumpsRevisionAndTimestamp(t *testing.T) {
	s := New()
	rc := testCtx("conv-upd")
	s.EnsureOrder("ord-u", rc)
	s.EnsureShoppingCart("ord-u", "cart-u")
	air, _ := s.EnsureAir("ord-u", "cart-u", "air-u")

	before := air.Revision
	s.UpdateAir("ord-u", "cart-u", "air-u", func(a *model.Air) {
		a.Ancillaries.SeatSelections = []model.SeatSelection{{
			PassengerID: "p1", SegmentID: "seg-1", RowNumber: "15", SeatNumber: "D",
		}}
		a.UpdatedAt = ""
	})

	got, ok := s.Air("air-u")
	require.True(t, ok)
	assert.Greater(t, got.Revision, before)
	assert.NotEmpty(t, got.UpdatedAt)
	assert.Len(t, got.Ancillaries.SeatSelections, 1)
}

func TestViewShoppingCartDoesNotBump(t *testing.T) {
	s := New()
	s.EnsureOrder("ord-v", testCtx("conv-view"))
	s.EnsureShoppingCart("ord-v", "cart-v")

	before := s.GlobalRevision()
	seen := false
	ok := s.ViewShoppingCart("cart-v", func(c *model.ShoppingCart) { seen = true })
	assert.True(t, ok)
	assert.True(t, seen)
	assert.Equal(t, before, s.GlobalRevision())

	assert.False(t, s.ViewShoppingCart("cart-missing", func(*model.ShoppingCart) {
		t.Fatal("callback must not run for a missing cart")
	}))
}

func TestUpdateEntitiesSkipsBumpWithoutCart(t *testing.T) {
	s := New()
	s.EnsureOrder("ord-e", testCtx("conv-ent"))

	before := s.GlobalRevision()
	s.UpdateEntities("ord-e", "cart-missing", "", func(o *model.Order, c *model.ShoppingCart, a *model.Air) {
		require.NotNil(t, o)
		assert.Nil(t, c)
		assert.Nil(t, a)
	})
	assert.Equal(t, before, s.GlobalRevision())
}

func TestEnsureFromRequestCreatesTiers(t *testing.T) {
	s := New()
	rc := testCtx("conv-2")

	warnings := s.EnsureFromRequest(rc, map[string]string{
		"orderId":        "ord-7",
		"shoppingCartId": "cart-7",
		"airId":          "air-7",
	})

	// conversation + order + cart + air all auto-created
	require.Len(t, warnings, 4)
	for _, w := range warnings {
		assert.Equal(t, model.WarnAutoCreated, w.Code)
	}

	cart, ok := s.ShoppingCart("cart-7")
	require.True(t, ok)
	assert.Equal(t, []string{"air-7"}, cart.SelectedAirs)

	air, ok := s.Air("air-7")
	require.True(t, ok)
	assert.Equal(t, "ord-7", air.OrderID)
	assert.Equal(t, "cart-7", air.ShoppingCartID)
}

func TestEnsureFromRequestSkipsMissingTiers(t *testing.T) {
	s := New()
	rc := testCtx("conv-3")

	// airId without a cart never creates an air.
	warnings := s.EnsureFromRequest(rc, map[string]string{
		"orderId": "ord-8",
		"airId":   "air-8",
	})
	require.Len(t, warnings, 2) // conversation + order

	_, ok := s.Air("air-8")
	assert.False(t, ok)
}

func TestEnsureFromRequestSynonyms(t *testing.T) {
	s := New()
	rc := testCtx("conv-4")

	s.EnsureFromRequest(rc, map[string]string{"order_id": "ord-9"})
	_, ok := s.Order("ord-9")
	assert.True(t, ok)
}

func TestEnsureFromRequestNoDuplicateSelectedAirs(t *testing.T) {
	s := New()
	rc := testCtx("conv-5")
	vars := map[string]string{"orderId": "o", "shoppingCartId": "c", "airId": "a"}

	s.EnsureFromRequest(rc, vars)
	s.EnsureFromRequest(rc, vars)

	cart, _ := s.ShoppingCart("c")
	assert.Equal(t, []string{"a"}, cart.SelectedAirs)
}

func TestEnsureFromRequestProfile(t *testing.T) {
	s := New()
	warnings := s.EnsureFromRequest(testCtx("conv-6"), map[string]string{"profileId": "prof-1"})
	require.Len(t, warnings, 2)
	_, created := s.EnsureProfile("prof-1")
	assert.False(t, created)
}

func TestResolveAirPrefersAddedAir(t *testing.T) {
	s := New()
	rc := testCtx("conv-7")

	order, _ := s.EnsureOrder("o1", rc)
	s.EnsureShoppingCart("o1", "c1")
	order.AddedAirID = "air-added"

	assert.Equal(t, "air-added", s.ResolveAir(rc, "o1", "c1"))
}

func TestResolveAirCreatesDeterministicAir(t *testing.T) {
	s := New()
	rc := testCtx("conv-8")

	first := s.ResolveAir(rc, "o2", "c2")
	second := s.ResolveAir(rc, "o2", "c2")
	assert.Equal(t, first, second)

	cart, _ := s.ShoppingCart("c2")
	assert.Equal(t, []string{first}, cart.SelectedAirs)
}

func TestSearchBundleMemoized(t *testing.T) {
	s := New()
	rc := testCtx("conv-9")
	b := Bundle{OrderID: "o", ShoppingCartID: "c", AirID: "a"}

	_, ok := s.SearchBundle(rc, "key-1")
	assert.False(t, ok)

	s.EnsureSearchBundle(rc, "key-1", b)
	got, ok := s.SearchBundle(rc, "key-1")
	require.True(t, ok)
	assert.Equal(t, b, got)

	// Same key in another conversation is a different bundle slot.
	_, ok = s.SearchBundle(testCtx("other"), "key-1")
	assert.False(t, ok)
}
