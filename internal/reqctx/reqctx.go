// Package reqctx normalizes identifying request headers into a canonical
// context. The real API relies heavily on these headers; the mock must be
// lenient, so missing values are defaulted (with a warning), never rejected.
package reqctx

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/ots-platform/ibe-mock/internal/model"
)

// Header names the booking front-ends send.
const (
	HeaderApplication  = "X-Application"
	HeaderFlow         = "X-Flow"
	HeaderLocale       = "X-Locale"
	HeaderConversation = "X-Conversation"
)

// Defaults substituted when a header is absent or blank.
const (
	DefaultApplication = "IBE"
	DefaultFlow        = "revenue"
	DefaultLocale      = "en"
)

// Context is the normalized request context handed to every handler.
type Context struct {
	Application    string
	Flow           string
	Locale         string
	ConversationID string
	Warnings       []model.Warning
}

// AsMap renders the identifying fields for response payloads.
func (c *Context) AsMap() map[string]any {
	return map[string]any{
		"application":    c.Application,
		"flow":           c.Flow,
		"locale":         c.Locale,
		"conversationId": c.ConversationID,
	}
}

// FromRequest builds a Context from r's headers. It always succeeds.
func FromRequest(r *http.Request) *Context {
	return FromHeaders(r.Header)
}

// FromHeaders builds a Context from raw headers, substituting defaults and
// recording a MISSING_HEADER warning per substitution.
func FromHeaders(h http.Header) *Context {
	ctx := &Context{}

	get := func(name, def string) string {
		v := strings.TrimSpace(h.Get(name))
		if v != "" {
			return v
		}
		ctx.Warnings = append(ctx.Warnings, model.NewWarning(
			model.WarnMissingHeader,
			fmt.Sprintf("Header %s is missing; mock applied a default.", name),
			map[string]any{"header": name, "default": def},
		))
		return def
	}

	ctx.Application = get(HeaderApplication, DefaultApplication)
	ctx.Flow = get(HeaderFlow, DefaultFlow)
	ctx.Locale = get(HeaderLocale, DefaultLocale)

	conv := strings.TrimSpace(h.Get(HeaderConversation))
	if conv == "" {
		conv = "mock-" + strings.ReplaceAll(uuid.New().String(), "-", "")
		ctx.Warnings = append(ctx.Warnings, model.NewWarning(
			model.WarnMissingHeader,
			fmt.Sprintf("Header %s is missing; mock generated a value.", HeaderConversation),
			map[string]any{"header": HeaderConversation, "generated": true},
		))
	}
	ctx.ConversationID = conv

	return ctx
}
