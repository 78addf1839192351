package restclient

// Method identifies the HTTP method of a request.
type Method string

// Supported request methods. The set covers the standard verbs plus the
// WebDAV verbs FusionAuth deployments behind WebDAV-aware proxies use.
const (
	MethodGet       Method = "GET"
	MethodPost      Method = "POST"
	MethodPut       Method = "PUT"
	MethodPatch     Method = "PATCH"
	MethodDelete    Method = "DELETE"
	MethodHead      Method = "HEAD"
	MethodOptions   Method = "OPTIONS"
	MethodTrace     Method = "TRACE"
	MethodCopy      Method = "COPY"
	MethodLock      Method = "LOCK"
	MethodMkCol     Method = "MKCOL"
	MethodMove      Method = "MOVE"
	MethodPropFind  Method = "PROPFIND"
	MethodPropPatch Method = "PROPPATCH"
	MethodUnlock    Method = "UNLOCK"
)

// supportedMethods is the closed set of methods Execute accepts.
var supportedMethods = map[Method]struct{}{
	MethodGet:       {},
	MethodPost:      {},
	MethodPut:       {},
	MethodPatch:     {},
	MethodDelete:    {},
	MethodHead:      {},
	MethodOptions:   {},
	MethodTrace:     {},
	MethodCopy:      {},
	MethodLock:      {},
	MethodMkCol:     {},
	MethodMove:      {},
	MethodPropFind:  {},
	MethodPropPatch: {},
	MethodUnlock:    {},
}

// Valid reports whether m is one of the supported methods.
func (m Method) Valid() bool {
	_, ok := supportedMethods[m]

	return ok
}

// String returns the method as it is sent on the wire.
func (m Method) String() string {
	return string(m)
}
