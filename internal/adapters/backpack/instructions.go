package backpack

// InstructionTableVersion tracks the venue API revision the table below
// was audited against. Adding an endpoint means adding a table entry.
const InstructionTableVersion = "v1.2024-06"

type endpointKey struct {
	method RESTMethod
	path   string
}

// instructionTable is the single authoritative mapping from private
// endpoints to the venue-defined signing instruction. Endpoints absent
// from the table sign without an instruction clause by design.
var instructionTable = map[endpointKey]string{
	{MethodGet, APIPrefixV1 + "/capital"}:                  "balanceQuery",
	{MethodGet, WAPIPrefixV1 + "/capital/deposit/address"}: "depositAddressQuery",
	{MethodGet, WAPIPrefixV1 + "/capital/deposits"}:        "depositQueryAll",
	{MethodGet, WAPIPrefixV1 + "/history/fills"}:           "fillHistoryQueryAll",
	{MethodDelete, APIPrefixV1 + "/order"}:                 "orderCancel",
	{MethodDelete, APIPrefixV1 + "/orders"}:                "orderCancelAll",
	{MethodPost, APIPrefixV1 + "/order"}:                   "orderExecute",
	{MethodGet, WAPIPrefixV1 + "/history/orders"}:          "orderHistoryQueryAll",
	{MethodGet, APIPrefixV1 + "/order"}:                    "orderQuery",
	{MethodGet, APIPrefixV1 + "/orders"}:                   "orderQueryAll",
	{MethodPost, WAPIPrefixV1 + "/capital/withdrawals"}:    "withdraw",
	{MethodGet, WAPIPrefixV1 + "/capital/withdrawals"}:     "withdrawalQueryAll",
}

// instructionFor resolves the signing instruction for a request. The
// empty string means the endpoint is intentionally unscoped.
func instructionFor(method RESTMethod, path string) string {
	return instructionTable[endpointKey{method: method, path: path}]
}
