// Package clientip resolves the address of the client behind an HTTP request.
//
// A Resolver uses the peer address from RemoteAddr unless the peer is one of
// the configured trusted proxies. Only then are X-Forwarded-For (walked right
// to left, skipping trusted hops) and X-Real-IP consulted. With no trusted
// proxies, forwarding headers are ignored, so clients cannot pick their own
// address by sending them.
//
//	res, err := clientip.NewResolver(clientip.Config{TrustedProxies: []string{"10.0.0.0/8"}})
//	if err != nil {
//	    return err
//	}
//	r := chi.NewRouter()
//	r.Use(res.Middleware)
//	r.With(ratelimiter.Middleware(limiter, clientip.Key)).Post("/targets", ...)
//
// Config loads TRUSTED_PROXIES (comma separated) with config.Load.
package clientip
