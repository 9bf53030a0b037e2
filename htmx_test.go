package htmx

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func header(pairs ...string) http.Header {
	h := make(http.Header)
	for i := 0; i+1 < len(pairs); i += 2 {
		h.Set(pairs[i], pairs[i+1])
	}
	return h
}

func TestNewParsesRequestHeaders(t *testing.T) {
	tests := []struct {
		name        string
		header      http.Header
		wantIsHTMX  bool
		wantBoosted bool
	}{
		{
			name:   "no htmx headers",
			header: header(),
		},
		{
			name:       "htmx request",
			header:     header(HeaderHXRequest, "true"),
			wantIsHTMX: true,
		},
		{
			name:        "boosted request",
			header:      header(HeaderHXRequest, "true", HeaderHXBoosted, "true"),
			wantIsHTMX:  true,
			wantBoosted: true,
		},
		{
			name:   "non-truthy marker degrades to false",
			header: header(HeaderHXRequest, "yes", HeaderHXBoosted, "1"),
		},
		{
			name:   "explicit false",
			header: header(HeaderHXRequest, "false"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New(tt.header)
			assert.Equal(t, tt.wantIsHTMX, h.IsHTMX())
			assert.Equal(t, tt.wantBoosted, h.Boosted())
			assert.False(t, h.HistoryRestoreRequest())
		})
	}
}

func TestNewStringAccessors(t *testing.T) {
	h := New(header(
		HeaderHXRequest, "true",
		HeaderHXTarget, "#content",
		HeaderHXCurrentURL, "https://example.com/tasks",
		HeaderHXTrigger, "save-button",
		HeaderHXTriggerName, "save",
		HeaderHXPrompt, "sure?",
	))

	assert.True(t, h.IsHTMX())
	assert.False(t, h.Boosted())

	target, ok := h.Target()
	require.True(t, ok)
	assert.Equal(t, "#content", target)

	url, ok := h.CurrentURL()
	require.True(t, ok)
	assert.Equal(t, "https://example.com/tasks", url)

	trigger, ok := h.Trigger()
	require.True(t, ok)
	assert.Equal(t, "save-button", trigger)

	name, ok := h.TriggerName()
	require.True(t, ok)
	assert.Equal(t, "save", name)

	prompt, ok := h.Prompt()
	require.True(t, ok)
	assert.Equal(t, "sure?", prompt)
}

func TestNewAbsentStringHeaders(t *testing.T) {
	h := New(header())

	for name, accessor := range map[string]func() (string, bool){
		"CurrentURL":  h.CurrentURL,
		"Prompt":      h.Prompt,
		"Target":      h.Target,
		"Trigger":     h.Trigger,
		"TriggerName": h.TriggerName,
	} {
		value, ok := accessor()
		assert.False(t, ok, "%s should be absent", name)
		assert.Empty(t, value, "%s should be empty", name)
	}
}

func TestDirectivesLastWriteWins(t *testing.T) {
	h := New(header())
	h.Redirect("/old")
	h.Redirect("/new")
	h.Retarget("#a")
	h.Retarget("#b")

	headers := h.Flush()
	assert.Equal(t, "/new", headers.Get(HeaderHXRedirect))
	assert.Equal(t, "#b", headers.Get(HeaderHXRetarget))
}

func TestDirectiveHeaderValues(t *testing.T) {
	h := New(header())
	h.Refresh()
	h.Reswap(SwapDelete)
	h.Reselect(".fragment")
	h.PushURL("/tasks/7")
	h.ReplaceURL("/tasks")

	headers := h.Flush()
	assert.Equal(t, "true", headers.Get(HeaderHXRefresh))
	assert.Equal(t, "delete", headers.Get(HeaderHXReswap))
	assert.Equal(t, ".fragment", headers.Get(HeaderHXReselect))
	assert.Equal(t, "/tasks/7", headers.Get(HeaderHXPushURL))
	assert.Equal(t, "/tasks", headers.Get(HeaderHXReplaceURL))
}

func TestPreventHistoryDirectives(t *testing.T) {
	h := New(header())
	h.PreventPushURL()
	h.PreventReplaceURL()

	headers := h.Flush()
	assert.Equal(t, "false", headers.Get(HeaderHXPushURL))
	assert.Equal(t, "false", headers.Get(HeaderHXReplaceURL))
}

func TestLocationSupersedesRedirect(t *testing.T) {
	h := New(header())
	h.Redirect("/plain")
	h.RedirectWithLocation(NewLocation("/fancy").Target("#content"))

	headers := h.Flush()
	assert.Empty(t, headers.Get(HeaderHXRedirect))
	assert.Contains(t, headers.Get(HeaderHXLocation), `"path":"/fancy"`)
}

func TestPlainRedirectWithoutLocation(t *testing.T) {
	h := New(header())
	h.Redirect("/plain")

	headers := h.Flush()
	assert.Equal(t, "/plain", headers.Get(HeaderHXRedirect))
	assert.Empty(t, headers.Get(HeaderHXLocation))
}

func TestRedirectWithSwap(t *testing.T) {
	h := New(header())
	h.RedirectWithSwap("/partial")

	headers := h.Flush()
	assert.Equal(t, "/partial", headers.Get(HeaderHXLocation))
}

func TestRedirectWithSwapOverridesEarlierLocation(t *testing.T) {
	h := New(header())
	h.RedirectWithLocation(NewLocation("/fancy").Target("#content"))
	h.RedirectWithSwap("/plain-path")

	headers := h.Flush()
	assert.Equal(t, "/plain-path", headers.Get(HeaderHXLocation))
}
