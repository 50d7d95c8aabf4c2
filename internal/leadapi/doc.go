// Package leadapi is a client for the remote lead service.
//
// The service exposes JSON endpoints under /api:
//
//	POST /api/check-emails       {"email"}                        -> {"exists"}
//	POST /api/save-emails        {"DomainName","Email","category"}
//	POST /api/save-linkedin-data {"Email","category"}
//	GET  /api/categories                                          -> [{"_id","category"}]
//	POST /api/categories         {"category"}
//
// Field names are the service's; they are not normalized. Any non-2xx
// response is returned as a *StatusError. The client never retries.
package leadapi
