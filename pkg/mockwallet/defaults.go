package mockwallet

import "github.com/aegis-sign/wallet-plugin-mock/pkg/walletplugin"

// ID 是 mock 插件在 host 框架中的唯一标识。
const ID = "wallet-plugin-mock"

const (
	defaultChainID         = "73e4385a2708e6d7048834fbc1079f2fabb17b3c125b146af438971e90716c4d"
	defaultPermissionLevel = "wharfkittest@test"
	defaultSignature       = "SIG_K1_KfqBXGdSRnVgZbAXyL9hEYbAvrZjcaxUCenD7Z3aX6yzf6MEyc4Cy3ywToD4j3SKkzSg7L1uvRUirEPHwAwrbg5c9z27Z3"
	defaultProjectURL      = "https://github.com/wharfkit/wallet-plugin-mock"
)

// DefaultConfig 返回默认配置：不需要链选择、不需要权限选择、不限制链。
func DefaultConfig() walletplugin.Config {
	return walletplugin.Config{
		RequiresChainSelect:      false,
		RequiresPermissionSelect: false,
	}
}

// DefaultMetadata 返回默认展示信息。
func DefaultMetadata() walletplugin.Metadata {
	return walletplugin.Metadata{
		Name:        "Mock Wallet",
		Description: "",
		Logo:        "base_64_encoded_image",
		Homepage:    defaultProjectURL,
		Download:    defaultProjectURL,
	}
}

// DefaultLoginResponse 返回默认登录模板。
func DefaultLoginResponse() walletplugin.LoginResult {
	return walletplugin.LoginResult{
		ChainID:         walletplugin.MustChainID(defaultChainID),
		PermissionLevel: walletplugin.MustPermissionLevel(defaultPermissionLevel),
	}
}

// DefaultSignResponse 返回默认签名模板，每次调用返回新的切片。
func DefaultSignResponse() walletplugin.SignResult {
	return walletplugin.SignResult{
		Signatures: []walletplugin.Signature{defaultSignature},
	}
}
