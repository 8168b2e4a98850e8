package email

import (
	"context"
)

// Service delivers outbound mail. The provisioning flow treats delivery as
// fire-and-forget: a failed send never rolls back the records it refers to.
type Service interface {
	SendAPIKey(ctx context.Context, name, address, key string) error
}
