package htmx

import "encoding/json"

// Location describes an HX-Location response: a client-side navigation that
// behaves like a boosted link, with optional context for the follow-up
// request. Build one with NewLocation and pass it to
// [Htmx.RedirectWithLocation].
type Location struct {
	path    string
	target  string
	source  string
	event   string
	swap    Swap
	headers map[string]string
	values  json.RawMessage
	handler string
	selects string
	push    json.RawMessage
	replace string
}

// locationBody is the JSON shape of a non-trivial HX-Location header value.
// Field names are part of the wire format.
type locationBody struct {
	Path    string            `json:"path"`
	Target  string            `json:"target,omitempty"`
	Source  string            `json:"source,omitempty"`
	Event   string            `json:"event,omitempty"`
	Swap    string            `json:"swap,omitempty"`
	Headers map[string]string `json:"headers,omitempty"`
	Values  json.RawMessage   `json:"values,omitempty"`
	Handler string            `json:"handler,omitempty"`
	Select  string            `json:"select,omitempty"`
	Push    json.RawMessage   `json:"push,omitempty"`
	Replace string            `json:"replace,omitempty"`
}

// NewLocation creates a Location pointing at the given path.
func NewLocation(path string) *Location {
	return &Location{path: path}
}

// Target overrides which element receives the swap.
func (l *Location) Target(selector string) *Location {
	l.target = selector
	return l
}

// Source sets the selector for the element treated as the request source.
func (l *Location) Source(selector string) *Location {
	l.source = selector
	return l
}

// Event names a client-side event to associate with the navigation.
func (l *Location) Event(name string) *Location {
	l.event = name
	return l
}

// Swap changes the swap strategy for the follow-up request.
func (l *Location) Swap(swap Swap) *Location {
	l.swap = swap
	return l
}

// Handler sets a custom client-side response handler.
func (l *Location) Handler(name string) *Location {
	l.handler = name
	return l
}

// Select restricts the response fragment the client should swap.
func (l *Location) Select(selector string) *Location {
	l.selects = selector
	return l
}

// Header adds a custom header to the follow-up request.
func (l *Location) Header(name, value string) *Location {
	if l.headers == nil {
		l.headers = make(map[string]string)
	}
	l.headers[name] = value
	return l
}

// Headers adds every entry of the given map as a follow-up request header.
func (l *Location) Headers(headers map[string]string) *Location {
	for name, value := range headers {
		l.Header(name, value)
	}
	return l
}

// Values attaches a payload of values for the follow-up request. The value is
// serialized immediately; an unserializable value returns an error and leaves
// the Location unchanged.
func (l *Location) Values(v any) error {
	raw, err := encodePayload(v)
	if err != nil {
		return err
	}
	l.values = raw
	return nil
}

// DisablePush prevents the client from pushing a new history entry.
func (l *Location) DisablePush() *Location {
	l.push = json.RawMessage("false")
	return l
}

// PushPath overrides the history path pushed for the follow-up request.
func (l *Location) PushPath(path string) *Location {
	raw, _ := json.Marshal(path)
	l.push = raw
	return l
}

// Replace replaces the current history entry with the given path.
func (l *Location) Replace(path string) *Location {
	l.replace = path
	return l
}

// headerValue encodes the Location into its HX-Location header value: the bare
// path when no other field is set, otherwise a JSON object.
func (l *Location) headerValue() string {
	if l.bare() {
		return l.path
	}
	body := locationBody{
		Path:    l.path,
		Target:  l.target,
		Source:  l.source,
		Event:   l.event,
		Swap:    l.swap.String(),
		Headers: l.headers,
		Values:  l.values,
		Handler: l.handler,
		Select:  l.selects,
		Push:    l.push,
		Replace: l.replace,
	}
	// Every field is a string, raw JSON, or string map; this cannot fail.
	out, _ := json.Marshal(body)
	return string(out)
}

func (l *Location) bare() bool {
	return l.target == "" && l.source == "" && l.event == "" && l.swap == "" &&
		len(l.headers) == 0 && l.values == nil && l.handler == "" &&
		l.selects == "" && l.push == nil && l.replace == ""
}
