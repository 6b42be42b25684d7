package services

import (
	"github.com/ots-platform/ibe-mock/internal/pricing"
	"github.com/ots-platform/ibe-mock/internal/reqctx"
	"github.com/ots-platform/ibe-mock/internal/store"
)

func newTestService() (*Service, *store.Store) {
	st := store.New()
	return New(st, pricing.NewEngine(st, "USD"), "USD", false), st
}

func testContext() *reqctx.Context {
	return &reqctx.Context{
		Application:    "IBE",
		Flow:           "revenue",
		Locale:         "en",
		ConversationID: "conv-services",
	}
}

func cartOf(payload map[string]any) map[string]any {
	cart, _ := payload["shoppingCart"].(map[string]any)
	return cart
}
