// generated code

package cdp

import (
	"xelf.org/cdp/rt"
)

// NetworkDomain is the wire method prefix of the Network domain.
//
// Network domain allows tracking network activities of the page.
const NetworkDomain = "Network"

// NetworkExperimental reports whether the Network domain is marked experimental in the schema.
func NetworkExperimental() bool { return false }

// NetworkLoaderID Unique loader identifier.
type NetworkLoaderID = string

// NetworkMonotonicTime Monotonically increasing time in seconds since an arbitrary point in the past.
type NetworkMonotonicTime = float64

// NetworkHeaders Request / response headers as keys / values of JSON object.
type NetworkHeaders = map[string]interface{}

// NetworkEnable calls the "Network.enable" command with an empty parameter map.
//
// Enables network tracking, network events will now be delivered to the client.
//
// Parameters:
//
//	maxTotalBufferSize - int? - Buffer size in bytes to use when preserving network payloads (XHRs, etc).
//
// No return values.
func NetworkEnable(s rt.Session) (rt.Result, error) {
	return s.ExecuteCommand("Network.enable", rt.Params{}, rt.Opts{})
}

// NetworkEnableParams calls "Network.enable" passing params through to the call verbatim.
func NetworkEnableParams(s rt.Session, params rt.Params) (rt.Result, error) {
	return s.ExecuteCommand("Network.enable", params, rt.Opts{})
}

// NetworkEnableOpts calls "Network.enable" with params and per call option overrides.
func NetworkEnableOpts(s rt.Session, params rt.Params, opts rt.Opts) (rt.Result, error) {
	return s.ExecuteCommand("Network.enable", params, opts)
}

// NetworkSetExtraHTTPHeaders calls the "Network.setExtraHTTPHeaders" command with an empty parameter map.
//
// Specifies whether to always send extra HTTP headers with the requests from this page.
//
// Parameters:
//
//	headers - headers - Map with extra HTTP headers.
//
// No return values.
func NetworkSetExtraHTTPHeaders(s rt.Session) (rt.Result, error) {
	return s.ExecuteCommand("Network.setExtraHTTPHeaders", rt.Params{}, rt.Opts{})
}

// NetworkSetExtraHTTPHeadersParams calls "Network.setExtraHTTPHeaders" passing params through to the call verbatim.
func NetworkSetExtraHTTPHeadersParams(s rt.Session, params rt.Params) (rt.Result, error) {
	return s.ExecuteCommand("Network.setExtraHTTPHeaders", params, rt.Opts{})
}

// NetworkSetExtraHTTPHeadersOpts calls "Network.setExtraHTTPHeaders" with params and per call option overrides.
func NetworkSetExtraHTTPHeadersOpts(s rt.Session, params rt.Params, opts rt.Opts) (rt.Result, error) {
	return s.ExecuteCommand("Network.setExtraHTTPHeaders", params, opts)
}
