package walletplugin

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const testChainHex = "73e4385a2708e6d7048834fbc1079f2fabb17b3c125b146af438971e90716c4d"

func TestChainIDFromHex(t *testing.T) {
	id, err := ChainIDFromHex(testChainHex)
	require.NoError(t, err)
	require.Equal(t, testChainHex, id.String())
	require.False(t, id.IsZero())

	upper, err := ChainIDFromHex(strings.ToUpper(testChainHex))
	require.NoError(t, err)
	require.Equal(t, id, upper)

	_, err = ChainIDFromHex("zz")
	require.True(t, errors.Is(err, ErrInvalidChainID))

	_, err = ChainIDFromHex(testChainHex[:62])
	require.True(t, errors.Is(err, ErrInvalidChainID))

	require.Panics(t, func() { MustChainID("nope") })
	require.True(t, ChainID{}.IsZero())
}

func TestChainIDJSON(t *testing.T) {
	id := MustChainID(testChainHex)
	data, err := json.Marshal(id)
	require.NoError(t, err)
	require.Equal(t, `"`+testChainHex+`"`, string(data))

	var decoded ChainID
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, id, decoded)

	require.Error(t, json.Unmarshal([]byte(`"abcd"`), &decoded))
}

func TestParsePermissionLevel(t *testing.T) {
	level, err := ParsePermissionLevel("alice@active")
	require.NoError(t, err)
	require.Equal(t, PermissionLevel{Actor: "alice", Permission: "active"}, level)
	require.Equal(t, "alice@active", level.String())

	for _, raw := range []string{"", "alice", "@active", "alice@"} {
		_, err := ParsePermissionLevel(raw)
		require.Truef(t, errors.Is(err, ErrInvalidPermissionLevel), "input %q", raw)
	}

	var decoded PermissionLevel
	require.NoError(t, decoded.UnmarshalText([]byte("bob@owner")))
	require.Equal(t, "bob", decoded.Actor)
	require.Equal(t, "owner", decoded.Permission)
}

func TestSignatureCurve(t *testing.T) {
	cases := map[Signature]string{
		"SIG_K1_KfqBXGdSRnVgZbAXyL9hEYbAvrZjcax": "K1",
		"SIG_R1_abc":                             "R1",
		"SIG_K1_":                                "",
		"PUB_K1_abc":                             "",
		"garbage":                                "",
	}
	for sig, want := range cases {
		require.Equalf(t, want, sig.Curve(), "signature %q", sig)
	}
}

func TestSignatureSplit(t *testing.T) {
	curve, payload, ok := Signature("SIG_K1_KfqBXGdSRnVgZbAXyL9hEYbAvrZjcax").Split()
	require.True(t, ok)
	require.Equal(t, "K1", curve)
	require.Equal(t, "KfqBXGdSRnVgZbAXyL9hEYbAvrZjcax", payload)

	for _, sig := range []Signature{"SIG__abc", "SIG_K1_", "SIG_K1", "PUB_K1_abc"} {
		_, _, ok := sig.Split()
		require.Falsef(t, ok, "signature %q", sig)
	}
}
