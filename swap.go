package htmx

import "fmt"

// Swap is the DOM insertion strategy htmx should use when swapping in response
// content. The values map 1:1 to the tokens the client understands.
type Swap string

const (
	SwapInnerHTML   Swap = "innerHTML"
	SwapOuterHTML   Swap = "outerHTML"
	SwapBeforeBegin Swap = "beforebegin"
	SwapAfterBegin  Swap = "afterbegin"
	SwapBeforeEnd   Swap = "beforeend"
	SwapAfterEnd    Swap = "afterend"
	SwapDelete      Swap = "delete"
	SwapNone        Swap = "none"
)

// String returns the wire token for the swap strategy.
func (s Swap) String() string {
	return string(s)
}

// ParseSwap converts a wire token back into a Swap, rejecting anything outside
// the closed set.
func ParseSwap(s string) (Swap, error) {
	switch Swap(s) {
	case SwapInnerHTML, SwapOuterHTML, SwapBeforeBegin, SwapAfterBegin,
		SwapBeforeEnd, SwapAfterEnd, SwapDelete, SwapNone:
		return Swap(s), nil
	}
	return "", fmt.Errorf("htmx: unknown swap strategy %q", s)
}
