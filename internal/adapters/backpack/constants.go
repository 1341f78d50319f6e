package backpack

const (
	defaultVenueName = "backpack"

	// DefaultDomain selects the production venue deployment.
	DefaultDomain = "exchange"

	restURLFormat = "https://api.backpack.%s"
	wssURLFormat  = "wss://ws.backpack.%s"

	// APIPrefixV1 prefixes spot trading endpoints.
	APIPrefixV1 = "/api/v1"
	// WAPIPrefixV1 prefixes wallet and history endpoints.
	WAPIPrefixV1 = "/wapi/v1"

	// DefaultWindowMillis is the venue default replay-protection window.
	DefaultWindowMillis int64 = 5000

	headerTimestamp = "X-Timestamp"
	headerWindow    = "X-Window"
	headerAPIKey    = "X-API-Key"
	headerSignature = "X-Signature"

	clientOrderIDPrefix = "bpx-"
)
