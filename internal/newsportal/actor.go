package newsportal

import "context"

type actorKey struct{}

// ContextWithActor stores the id of the acting user.
func ContextWithActor(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, actorKey{}, userID)
}

// ActorFromContext returns the acting user id and false when none was set.
func ActorFromContext(ctx context.Context) (int, bool) {
	userID, ok := ctx.Value(actorKey{}).(int)
	return userID, ok && userID > 0
}
