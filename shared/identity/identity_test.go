package identity_test

import (
	"context"
	"dormy/shared/constant"
	"dormy/shared/identity"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundTrip(t *testing.T) {
	ctx := identity.WithIdentity(context.Background(), identity.Identity{UserID: "u1", Email: "a@b.com", Role: constant.RoleLandlord})

	id := identity.FromContext(ctx)

	assert.True(t, id.Authenticated())
	assert.True(t, id.Is(constant.RoleLandlord))
	assert.Equal(t, "u1", id.Actor())
}

func TestAnonymous(t *testing.T) {
	id := identity.FromContext(context.Background())

	assert.False(t, id.Authenticated())
	assert.Equal(t, constant.ContextSystem, id.Actor())
}
