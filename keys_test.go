package switchyard_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/switchyard-web/switchyard"
)

func TestKeyString(t *testing.T) {
	require.Equal(t, "switchyard context key: RequestIDKey", switchyard.RequestIDKey.String())
	require.Equal(t, "switchyard context key: IpAddrKey", switchyard.IpAddrKey.String())
}
