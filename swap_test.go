package htmx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSwapRoundTrip(t *testing.T) {
	swaps := []Swap{
		SwapInnerHTML, SwapOuterHTML, SwapBeforeBegin, SwapAfterBegin,
		SwapBeforeEnd, SwapAfterEnd, SwapDelete, SwapNone,
	}
	for _, want := range swaps {
		got, err := ParseSwap(want.String())
		require.NoError(t, err, "token %q", want)
		assert.Equal(t, want, got)
	}
}

func TestParseSwapRejectsUnknownTokens(t *testing.T) {
	for _, token := range []string{"", "innerHtml", "replace", "INNERHTML", "beforeBegin"} {
		_, err := ParseSwap(token)
		assert.Error(t, err, "token %q", token)
	}
}
