package providers

import "time"

// shutdownTimeout bounds how long a component may take to shut down.
const shutdownTimeout = 10 * time.Second
