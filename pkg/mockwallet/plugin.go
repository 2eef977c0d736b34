// Package mockwallet 提供钱包插件的测试替身，返回预置的登录与签名结果，
// 便于在不接入真实钱包的情况下测试 session 建立与交易签名流程。
package mockwallet

import (
	"context"
	"log/slog"

	"github.com/aegis-sign/wallet-plugin-mock/pkg/walletplugin"
)

var _ walletplugin.WalletPlugin = (*Plugin)(nil)

// Options 允许在构造时覆盖默认值。非 nil 字段整体替换对应默认值，不做合并。
type Options struct {
	Config        *walletplugin.Config
	Metadata      *walletplugin.Metadata
	Data          map[string]any
	LoginResponse *walletplugin.LoginResult
	SignResponse  *walletplugin.SignResult

	Logger  *slog.Logger
	Metrics *Metrics
}

// Plugin 是 walletplugin.WalletPlugin 的 mock 实现。
//
// 构造后字段只读，Login/Sign 不修改任何状态，可并发调用。
type Plugin struct {
	// Data 仅供测试检查，插件本身从不读取。
	Data map[string]any

	config        walletplugin.Config
	metadata      walletplugin.Metadata
	loginResponse walletplugin.LoginResult
	signResponse  walletplugin.SignResult

	logger  *slog.Logger
	metrics *Metrics
}

// New 构造 Plugin，opts 可以为 nil。不校验覆盖值。
func New(opts *Options) *Plugin {
	p := &Plugin{
		Data:          map[string]any{},
		config:        DefaultConfig(),
		metadata:      DefaultMetadata(),
		loginResponse: DefaultLoginResponse(),
		signResponse:  DefaultSignResponse(),
		logger:        slog.Default(),
	}
	if opts == nil {
		return p
	}
	if opts.Config != nil {
		p.config = *opts.Config
	}
	if opts.Metadata != nil {
		p.metadata = *opts.Metadata
	}
	if opts.Data != nil {
		p.Data = opts.Data
	}
	if opts.LoginResponse != nil {
		p.loginResponse = *opts.LoginResponse
	}
	if opts.SignResponse != nil {
		p.signResponse = *opts.SignResponse
	}
	if opts.Logger != nil {
		p.logger = opts.Logger
	}
	p.metrics = opts.Metrics
	return p
}

// ID 返回常量 "wallet-plugin-mock"。
func (p *Plugin) ID() string { return ID }

// Config 返回构造时确定的配置。
func (p *Plugin) Config() walletplugin.Config { return p.config }

// Metadata 返回构造时确定的展示信息。
func (p *Plugin) Metadata() walletplugin.Metadata { return p.metadata }

// LoginResponse 返回存储的登录模板。
func (p *Plugin) LoginResponse() walletplugin.LoginResult { return p.loginResponse }

// SignResponse 返回存储的签名模板。
func (p *Plugin) SignResponse() walletplugin.SignResult { return p.signResponse }

// Login 以登录模板的副本为基础，按 loginCtx 覆盖 chain id 与权限后返回。
// 模板中的 chain id 不与 SupportedChains 比对。
func (p *Plugin) Login(_ context.Context, loginCtx walletplugin.LoginContext) (walletplugin.LoginResult, error) {
	resp := p.loginResponse
	chainOverride := loginCtx.Chain != nil
	permissionOverride := loginCtx.PermissionLevel != nil
	if chainOverride {
		resp.ChainID = loginCtx.Chain.ID
	}
	if permissionOverride {
		resp.PermissionLevel = *loginCtx.PermissionLevel
	}
	p.metrics.incLogin(chainOverride, permissionOverride)
	p.logger.Debug("mock wallet login",
		slog.String("chain_id", resp.ChainID.String()),
		slog.String("permission", resp.PermissionLevel.String()),
		slog.Bool("chain_override", chainOverride),
		slog.Bool("permission_override", permissionOverride),
	)
	return resp, nil
}

// Sign 忽略 chain 与 resolved，原样返回签名模板。调用方不得修改返回的切片。
func (p *Plugin) Sign(_ context.Context, _ walletplugin.ChainDefinition, _ walletplugin.ResolvedSigningRequest) (walletplugin.SignResult, error) {
	p.metrics.incSign()
	p.logger.Debug("mock wallet sign", slog.Int("signatures", len(p.signResponse.Signatures)))
	return p.signResponse, nil
}
