// generated code

package cdp

import (
	"xelf.org/cdp/rt"
)

// PageDomain is the wire method prefix of the Page domain.
//
// Actions and events related to the inspected page belong to the page domain.
const PageDomain = "Page"

// PageExperimental reports whether the Page domain is marked experimental in the schema.
func PageExperimental() bool { return false }

// PageFrameID Unique frame identifier.
type PageFrameID = string

// PageTransitionType Transition type.
//
// Allowed values: link, typed, reload, other.
type PageTransitionType = string

// PageFrame Information about the Frame on the page.
type PageFrame struct {
	ID       PageFrameID     `json:"id"`
	ParentID *PageFrameID    `json:"parentId,omitempty"`
	LoaderID NetworkLoaderID `json:"loaderId"`
	URL      string          `json:"url"`
}

// PageEnable calls the "Page.enable" command with an empty parameter map.
//
// Enables page domain notifications.
//
// No return values.
func PageEnable(s rt.Session) (rt.Result, error) {
	return s.ExecuteCommand("Page.enable", rt.Params{}, rt.Opts{})
}

// PageEnableParams calls "Page.enable" passing params through to the call verbatim.
func PageEnableParams(s rt.Session, params rt.Params) (rt.Result, error) {
	return s.ExecuteCommand("Page.enable", params, rt.Opts{})
}

// PageEnableOpts calls "Page.enable" with params and per call option overrides.
func PageEnableOpts(s rt.Session, params rt.Params, opts rt.Opts) (rt.Result, error) {
	return s.ExecuteCommand("Page.enable", params, opts)
}

// PageNavigate calls the "Page.navigate" command with an empty parameter map.
//
// Navigates current page to the given URL.
//
// Parameters:
//
//	url - str - URL to navigate the page to.
//	transitionType - transition_type? - Intended transition type.
//
// Returns:
//
//	frameId - frame_id - Frame id that has navigated (or failed to navigate).
//	errorText - str? - User friendly error message.
func PageNavigate(s rt.Session) (rt.Result, error) {
	return s.ExecuteCommand("Page.navigate", rt.Params{}, rt.Opts{})
}

// PageNavigateParams calls "Page.navigate" passing params through to the call verbatim.
func PageNavigateParams(s rt.Session, params rt.Params) (rt.Result, error) {
	return s.ExecuteCommand("Page.navigate", params, rt.Opts{})
}

// PageNavigateOpts calls "Page.navigate" with params and per call option overrides.
func PageNavigateOpts(s rt.Session, params rt.Params, opts rt.Opts) (rt.Result, error) {
	return s.ExecuteCommand("Page.navigate", params, opts)
}

// PageReload calls the "Page.reload" command with an empty parameter map.
//
// Reloads given page optionally ignoring the cache.
//
// Parameters:
//
//	ignoreCache - bool? - If true, browser cache is ignored.
//
// No return values.
func PageReload(s rt.Session) (rt.Result, error) {
	return s.ExecuteCommand("Page.reload", rt.Params{}, rt.Opts{})
}

// PageReloadParams calls "Page.reload" passing params through to the call verbatim.
func PageReloadParams(s rt.Session, params rt.Params) (rt.Result, error) {
	return s.ExecuteCommand("Page.reload", params, rt.Opts{})
}

// PageReloadOpts calls "Page.reload" with params and per call option overrides.
func PageReloadOpts(s rt.Session, params rt.Params, opts rt.Opts) (rt.Result, error) {
	return s.ExecuteCommand("Page.reload", params, opts)
}

// PageEventLoadEventFired is the method name of the "Page.loadEventFired" event.
const PageEventLoadEventFired = "Page.loadEventFired"

// PageEventFrameNavigated is the method name of the "Page.frameNavigated" event.
//
// Fired once navigation of the frame has completed.
const PageEventFrameNavigated = "Page.frameNavigated"
