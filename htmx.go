package htmx

import (
	"net/http"
	"net/textproto"
)

// optional is a request header value that may be absent.
type optional struct {
	value string
	ok    bool
}

// Htmx is the per-request htmx state: the parsed request headers on one side,
// and the response directives queued by the handler on the other. Create one
// with New (or let Middleware do it), mutate it from the handler, and emit its
// Flush output as response headers once the handler returns.
//
// An Htmx value belongs to exactly one request and must not be shared across
// requests. Within a request it is used synchronously by the handler, so no
// locking is involved.
type Htmx struct {
	isHTMX         bool
	boosted        bool
	historyRestore bool
	currentURL     optional
	prompt         optional
	target         optional
	trigger        optional
	triggerName    optional

	directives http.Header
	triggers   [stageCount]triggerSet
	location   *Location
}

// New builds the htmx state for one request from its header set. Construction
// never fails: absent or malformed headers degrade to false or absent fields.
func New(header http.Header) *Htmx {
	return &Htmx{
		isHTMX:         boolHeader(header, HeaderHXRequest),
		boosted:        boolHeader(header, HeaderHXBoosted),
		historyRestore: boolHeader(header, HeaderHXHistoryRestoreRequest),
		currentURL:     stringHeader(header, HeaderHXCurrentURL),
		prompt:         stringHeader(header, HeaderHXPrompt),
		target:         stringHeader(header, HeaderHXTarget),
		trigger:        stringHeader(header, HeaderHXTrigger),
		triggerName:    stringHeader(header, HeaderHXTriggerName),
		directives:     make(http.Header),
	}
}

// boolHeader reports whether a boolean marker header is present with the exact
// truthy token. Any other value, including absence, is false.
func boolHeader(header http.Header, name string) bool {
	value, ok := lookupHeader(header, name)
	return ok && value == trueToken
}

func stringHeader(header http.Header, name string) optional {
	value, ok := lookupHeader(header, name)
	return optional{value: value, ok: ok}
}

func lookupHeader(header http.Header, name string) (string, bool) {
	values, ok := header[textproto.CanonicalMIMEHeaderKey(name)]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// IsHTMX reports whether the request was issued by the htmx client library.
func (h *Htmx) IsHTMX() bool {
	return h.isHTMX
}

// Boosted reports whether the request came from an hx-boost link or form.
func (h *Htmx) Boosted() bool {
	return h.boosted
}

// HistoryRestoreRequest reports whether the request is restoring history after
// a miss in the client's local history cache.
func (h *Htmx) HistoryRestoreRequest() bool {
	return h.historyRestore
}

// CurrentURL returns the browser URL at the time of the request.
func (h *Htmx) CurrentURL() (string, bool) {
	return h.currentURL.value, h.currentURL.ok
}

// Prompt returns the user's response to an hx-prompt.
func (h *Htmx) Prompt() (string, bool) {
	return h.prompt.value, h.prompt.ok
}

// Target returns the id of the target element, when one exists.
func (h *Htmx) Target() (string, bool) {
	return h.target.value, h.target.ok
}

// Trigger returns the id of the element that triggered the request.
func (h *Htmx) Trigger() (string, bool) {
	return h.trigger.value, h.trigger.ok
}

// TriggerName returns the name of the element that triggered the request.
func (h *Htmx) TriggerName() (string, bool) {
	return h.triggerName.value, h.triggerName.ok
}

// Redirect asks the client to perform a full-page redirect to the given URL.
// Superseded by RedirectWithLocation when both are called.
func (h *Htmx) Redirect(url string) {
	h.directives.Set(HeaderHXRedirect, url)
}

// RedirectWithSwap asks the client to navigate to the given path without a
// full page reload, with default swap behavior.
func (h *Htmx) RedirectWithSwap(path string) {
	h.location = nil
	h.directives.Set(HeaderHXLocation, path)
}

// RedirectWithLocation asks the client to navigate per the given Location
// descriptor. At flush time it takes precedence over a plain Redirect.
func (h *Htmx) RedirectWithLocation(location *Location) {
	h.location = location
}

// Refresh asks the client to do a full refresh of the page.
func (h *Htmx) Refresh() {
	h.directives.Set(HeaderHXRefresh, trueToken)
}

// PushURL pushes the given URL into the client's history stack.
func (h *Htmx) PushURL(url string) {
	h.directives.Set(HeaderHXPushURL, url)
}

// PreventPushURL prevents the client from updating the history stack.
func (h *Htmx) PreventPushURL() {
	h.directives.Set(HeaderHXPushURL, "false")
}

// ReplaceURL replaces the current URL in the client's location bar.
func (h *Htmx) ReplaceURL(url string) {
	h.directives.Set(HeaderHXReplaceURL, url)
}

// PreventReplaceURL prevents the client from updating the location bar.
func (h *Htmx) PreventReplaceURL() {
	h.directives.Set(HeaderHXReplaceURL, "false")
}

// Reswap overrides how the client swaps in the response content.
func (h *Htmx) Reswap(swap Swap) {
	h.directives.Set(HeaderHXReswap, swap.String())
}

// Retarget overrides the target element with a CSS selector.
func (h *Htmx) Retarget(selector string) {
	h.directives.Set(HeaderHXRetarget, selector)
}

// Reselect overrides which part of the response content is swapped in, with a
// CSS selector.
func (h *Htmx) Reselect(selector string) {
	h.directives.Set(HeaderHXReselect, selector)
}

// TriggerEvent registers a client-side event to fire at the given lifecycle
// stage, with an optional payload (nil for a bare event). Registering the same
// name at the same stage again replaces the payload; distinct names keep their
// registration order. The payload is serialized immediately — an
// unserializable value returns an error and leaves the registered triggers
// unchanged.
func (h *Htmx) TriggerEvent(name string, payload any, stage Stage) error {
	if name == "" {
		return ErrEmptyEventName
	}
	if !stage.valid() {
		return ErrInvalidStage
	}

	var raw []byte
	if payload != nil {
		encoded, err := encodePayload(payload)
		if err != nil {
			return err
		}
		raw = encoded
	}

	h.triggers[stage].add(name, raw)
	return nil
}

// Flush serializes the queued triggers and the Location directive into the
// pending directive set and returns the complete set of response headers to
// emit. The middleware calls Flush exactly once, after the handler returns;
// calling it again is a contract violation and is not detected.
func (h *Htmx) Flush() http.Header {
	for stage := StageStandard; stage < stageCount; stage++ {
		set := &h.triggers[stage]
		if set.empty() {
			continue
		}
		h.directives.Set(stage.Header(), set.headerValue())
	}

	if h.location != nil {
		h.directives.Set(HeaderHXLocation, h.location.headerValue())
		h.directives.Del(HeaderHXRedirect)
	}

	return h.directives
}
