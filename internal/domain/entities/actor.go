package entities

import (
	"context"

	"github.com/google/uuid"
)

// Actor is the admin performing a request, recorded on audit entries
type Actor struct {
	UserID    uuid.UUID
	Role      string
	IP        string
	UserAgent string
}

// ActorRoleSystem is the role of changes made by background jobs
const ActorRoleSystem = "system"

// SystemActor identifies a background job on the audit entries it writes
func SystemActor(job string) Actor {
	return Actor{Role: ActorRoleSystem, UserAgent: job}
}

type actorKey struct{}

// WithActor stores the actor in ctx
func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFromContext returns the actor stored by WithActor
func ActorFromContext(ctx context.Context) (Actor, bool) {
	if ctx == nil {
		return Actor{}, false
	}
	a, ok := ctx.Value(actorKey{}).(Actor)
	return a, ok
}
