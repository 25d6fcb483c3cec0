package media

import "context"

// Service is the narrow surface of the external media host consumed here.
// Assets are uploaded out-of-band by the frontend; the backend only ever
// deletes them.
type Service interface {
	Destroy(ctx context.Context, publicID string) error
}
