package publisher

import (
	"context"

	"github.com/Aravinth1228/safehaven/module/core/domain"
)

type EventPublisher interface {
	PublishTransition(ctx context.Context, t *domain.Transition) error
	PublishAlert(ctx context.Context, a *domain.Alert) error
}
