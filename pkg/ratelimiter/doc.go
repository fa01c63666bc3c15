// Package ratelimiter throttles HTTP requests with a token bucket per key.
//
// A Bucket pairs a Config (capacity, refill rate and refill interval) with a
// Store. MemoryStore keeps buckets in process and drops those idle for an
// hour. Middleware consumes one token per request and answers 429 with a
// Retry-After header once the bucket is empty.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//	limiter, err := ratelimiter.NewBucket(store, cfg)
//	if err != nil {
//	    return err
//	}
//	r.Use(ratelimiter.Middleware(limiter, clientip.Key,
//	    ratelimiter.WithSkipper(ratelimiter.SkipSafeMethods),
//	))
//
// Config carries RATE_LIMIT_* env tags and loads with config.Load.
package ratelimiter
