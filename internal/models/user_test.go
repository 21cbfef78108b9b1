package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_ZeroValueIsAnonymous(t *testing.T) {
	var u User

	assert.True(t, u.Anonymous())
	assert.Equal(t, "", u.Username)
	assert.Equal(t, "<anonymous>", u.String())
	assert.Equal(t, "", u.CurrencySymbol())
}

func TestUser_CurrencySymbol(t *testing.T) {
	u := User{Credential: Credential{Username: "alice", CurrencyCode: "USD"}}

	assert.False(t, u.Anonymous())
	assert.Equal(t, "$", u.CurrencySymbol())
	assert.Equal(t, "https://client.example/account/general", u.AccountURL("https://client.example"))
}

func TestCredential_JSONKeys(t *testing.T) {
	c := Credential{
		Username:     "alice",
		Token:        "tok",
		UserID:       "u1",
		DisplayName:  "Alice",
		CurrencyCode: "GBP",
	}

	data, err := json.Marshal(c)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "alice", raw["username"])
	assert.Equal(t, "tok", raw["token"])
	assert.Equal(t, "u1", raw["id"])
	assert.Equal(t, "Alice", raw["name"])
	assert.Equal(t, "GBP", raw["currency_code"])
	assert.NotContains(t, raw, "avatar")
}
