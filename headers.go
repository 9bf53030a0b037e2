package htmx

// Request header names set by the htmx client library.
const (
	HeaderHXRequest               = "HX-Request"
	HeaderHXBoosted               = "HX-Boosted"
	HeaderHXCurrentURL            = "HX-Current-URL"
	HeaderHXHistoryRestoreRequest = "HX-History-Restore-Request"
	HeaderHXPrompt                = "HX-Prompt"
	HeaderHXTarget                = "HX-Target"
	HeaderHXTrigger               = "HX-Trigger"
	HeaderHXTriggerName           = "HX-Trigger-Name"
)

// Response header names understood by the htmx client library.
const (
	HeaderHXLocation           = "HX-Location"
	HeaderHXPushURL            = "HX-Push-Url"
	HeaderHXRedirect           = "HX-Redirect"
	HeaderHXRefresh            = "HX-Refresh"
	HeaderHXReplaceURL         = "HX-Replace-Url"
	HeaderHXReswap             = "HX-Reswap"
	HeaderHXRetarget           = "HX-Retarget"
	HeaderHXReselect           = "HX-Reselect"
	HeaderHXTriggerAfterSettle = "HX-Trigger-After-Settle"
	HeaderHXTriggerAfterSwap   = "HX-Trigger-After-Swap"
)

// trueToken is the only header value htmx treats as a truthy boolean marker.
const trueToken = "true"
