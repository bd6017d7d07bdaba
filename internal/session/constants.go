package session

import "time"

// DefaultCacheSize is the session capacity used when none is configured.
const DefaultCacheSize = 1024

// DefaultTTL is the idle lifetime used when none is configured.
const DefaultTTL = 30 * time.Minute
