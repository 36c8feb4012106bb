package permissions_test

import (
	"dormy/permissions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedPermissionsLoad(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	assert.True(t, data.FindPermissions("/v1/auth/login", "POST").Skip)
	assert.True(t, data.FindPermissions("/v1/listings/search", "GET").Skip)
	assert.Equal(t, []string{"landlord"}, data.FindPermissions("/v1/reservations/{id}/approve", "POST").Permissions)
	assert.Equal(t, []string{"admin"}, data.FindPermissions("/v1/verifications/{id}/approve", "POST").Permissions)
	assert.Equal(t, []string{"tenant"}, data.FindPermissions("/v1/reservations", "POST").Permissions)
}

func TestFindPermissions_IgnoresTrailingSlash(t *testing.T) {
	data, err := permissions.Parse([]byte(`{"endpoints":[{"path":"/v1/listings","method":"POST","permissions":["landlord"]}]}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"landlord"}, data.FindPermissions("/v1/listings/", "POST").Permissions)
	assert.Equal(t, []string{"landlord"}, data.FindPermissions("/v1/listings", "post").Permissions)
	assert.Empty(t, data.FindPermissions("/v1/listings", "GET").Permissions)
	assert.False(t, data.FindPermissions("/v1/unknown", "GET").Skip)
}

func TestParse_RejectsMalformedJSON(t *testing.T) {
	_, err := permissions.Parse([]byte(`{"endpoints":`))

	assert.Error(t, err)
}
