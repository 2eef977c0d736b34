package mockwallet

import (
	"fmt"
	"os"

	"github.com/aegis-sign/wallet-plugin-mock/pkg/validator"
	"github.com/aegis-sign/wallet-plugin-mock/pkg/walletplugin"
	"gopkg.in/yaml.v3"
)

// fixture 是 YAML 夹具文件的结构，缺失的段落保持默认值。
type fixture struct {
	Strict        bool                   `yaml:"strict"`
	Config        *walletplugin.Config   `yaml:"config"`
	Metadata      *walletplugin.Metadata `yaml:"metadata"`
	Data          map[string]any         `yaml:"data"`
	LoginResponse *loginFixture          `yaml:"loginResponse"`
	SignResponse  *signFixture           `yaml:"signResponse"`
}

type loginFixture struct {
	ChainID         string `yaml:"chainId"`
	PermissionLevel string `yaml:"permissionLevel"`
}

type signFixture struct {
	Signatures []string `yaml:"signatures"`
}

// LoadFixture 读取 YAML 夹具文件并转换为 Options。
func LoadFixture(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	opts, err := ParseFixture(data)
	if err != nil {
		return nil, fmt.Errorf("fixture %s: %w", path, err)
	}
	return opts, nil
}

// ParseFixture 解析 YAML 夹具。只设置文件中出现的段落，保持整体替换语义；
// strict 为 true 时额外通过 validator 校验名称与签名格式。
func ParseFixture(data []byte) (*Options, error) {
	var fx fixture
	if err := yaml.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	opts := &Options{
		Config:   fx.Config,
		Metadata: fx.Metadata,
		Data:     fx.Data,
	}
	if fx.LoginResponse != nil {
		login, err := fx.LoginResponse.toResult(fx.Strict)
		if err != nil {
			return nil, err
		}
		opts.LoginResponse = &login
	}
	if fx.SignResponse != nil {
		sign, err := fx.SignResponse.toResult(fx.Strict)
		if err != nil {
			return nil, err
		}
		opts.SignResponse = &sign
	}
	return opts, nil
}

// toResult 转换登录段，缺失字段保留零值。
func (f *loginFixture) toResult(strict bool) (walletplugin.LoginResult, error) {
	var result walletplugin.LoginResult
	if f.ChainID != "" {
		id, err := walletplugin.ChainIDFromHex(f.ChainID)
		if err != nil {
			return result, fmt.Errorf("loginResponse.chainId: %w", err)
		}
		result.ChainID = id
	}
	if f.PermissionLevel != "" {
		if strict {
			if err := validator.ValidatePermissionLevel(f.PermissionLevel); err != nil {
				return result, fmt.Errorf("loginResponse.permissionLevel: %w", err)
			}
		}
		level, err := walletplugin.ParsePermissionLevel(f.PermissionLevel)
		if err != nil {
			return result, fmt.Errorf("loginResponse.permissionLevel: %w", err)
		}
		result.PermissionLevel = level
	}
	return result, nil
}

func (f *signFixture) toResult(strict bool) (walletplugin.SignResult, error) {
	result := walletplugin.SignResult{Signatures: make([]walletplugin.Signature, 0, len(f.Signatures))}
	for i, raw := range f.Signatures {
		if strict {
			if err := validator.ValidateSignature(raw); err != nil {
				return result, fmt.Errorf("signResponse.signatures[%d]: %w", i, err)
			}
		}
		result.Signatures = append(result.Signatures, walletplugin.Signature(raw))
	}
	return result, nil
}
