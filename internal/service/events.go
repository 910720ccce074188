// Package service holds the use cases behind the HTTP and gRPC front-ends.
package service

import "context"

// Producer publishes an event payload under a key. Implemented by
// kafka.Producer.
type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}
