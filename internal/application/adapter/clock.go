package adapter

import "time"

// Clock supplies the current time to use cases that depend on "today".
type Clock interface {
	Now() time.Time
}
