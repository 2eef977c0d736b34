package walletapi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListenTCP(t *testing.T) {
	lis, err := Listen("127.0.0.1:0", 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = lis.Close() })
	require.Equal(t, "tcp", lis.Addr().Network())
}
