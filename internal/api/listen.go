package walletapi

import (
	"net"

	"github.com/mdlayher/vsock"
)

// Listen 在 vsockPort 大于 0 时监听 AF_VSOCK，否则监听 TCP addr。
func Listen(addr string, vsockPort uint32) (net.Listener, error) {
	if vsockPort > 0 {
		lis, err := vsock.Listen(vsockPort, nil)
		if err != nil {
			return nil, err
		}
		return lis, nil
	}
	return net.Listen("tcp", addr)
}
