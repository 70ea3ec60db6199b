package auth

import "time"

// timeNow is swapped in tests to validate codes at a fixed instant.
var timeNow = time.Now
