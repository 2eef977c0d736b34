// Package walletplugin 描述 session 框架与钱包插件之间的能力契约。
package walletplugin

import "context"

// Config 描述插件对 UI 的要求。
type Config struct {
	RequiresChainSelect      bool      `json:"requiresChainSelect" yaml:"requiresChainSelect"`
	RequiresPermissionSelect bool      `json:"requiresPermissionSelect" yaml:"requiresPermissionSelect"`
	SupportedChains          []ChainID `json:"supportedChains,omitempty" yaml:"supportedChains,omitempty"`
}

// Metadata 是 UI 展示用的插件信息。
type Metadata struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Logo        string `json:"logo" yaml:"logo"`
	Homepage    string `json:"homepage" yaml:"homepage"`
	Download    string `json:"download" yaml:"download"`
}

// ChainDefinition 是 host 传入的链定义。
type ChainDefinition struct {
	ID  ChainID
	URL string
}

// LoginContext 由 host 在建立 session 时传入，nil 字段表示未指定。
type LoginContext struct {
	Chain           *ChainDefinition
	PermissionLevel *PermissionLevel
}

// ResolvedSigningRequest 是 host 已解析完成的签名请求，对插件不透明。
type ResolvedSigningRequest struct {
	Payload []byte
}

// LoginResult 是一次成功登录的结果。
type LoginResult struct {
	ChainID         ChainID
	PermissionLevel PermissionLevel
}

// SignResult 携带有序的签名列表。
type SignResult struct {
	Signatures []Signature
}

// WalletPlugin 是 host 框架加载的插件能力契约。
//
// Login/Sign 对应 host 的异步调用约定：调用方等待返回后再继续。
type WalletPlugin interface {
	ID() string
	Config() Config
	Metadata() Metadata
	Login(ctx context.Context, loginCtx LoginContext) (LoginResult, error)
	Sign(ctx context.Context, chain ChainDefinition, resolved ResolvedSigningRequest) (SignResult, error)
}
