package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aegis-sign/wallet-plugin-mock/pkg/walletplugin"
	"github.com/btcsuite/btcutil/base58"
)

// SignatureCurve 描述签名使用的曲线。
type SignatureCurve string

// 支持的签名曲线：secp256k1、secp256r1 与 WebAuthn。
const (
	SignatureCurveK1 SignatureCurve = "K1"
	SignatureCurveR1 SignatureCurve = "R1"
	SignatureCurveWA SignatureCurve = "WA"
)

// K1/R1 签名为 65 字节加 4 字节 ripemd160 校验和。
const fixedSignatureLen = 65 + 4

const maxNameLen = 13

// NormalizeCurve 将用户输入转换为内部常量。
func NormalizeCurve(raw string) (SignatureCurve, error) {
	switch strings.ToUpper(raw) {
	case string(SignatureCurveK1):
		return SignatureCurveK1, nil
	case string(SignatureCurveR1):
		return SignatureCurveR1, nil
	case string(SignatureCurveWA):
		return SignatureCurveWA, nil
	default:
		return "", fmt.Errorf("unsupported curve %q", raw)
	}
}

// ValidateName 校验账户/权限名：最多 13 个字符，字符集 a-z 1-5 与 '.'，
// 第 13 个字符只能是 a-j 1-5 或 '.'。
func ValidateName(name string) error {
	if name == "" {
		return errors.New("name is empty")
	}
	if len(name) > maxNameLen {
		return fmt.Errorf("name %q longer than %d characters", name, maxNameLen)
	}
	for i, c := range name {
		if i == maxNameLen-1 {
			if !(c == '.' || (c >= '1' && c <= '5') || (c >= 'a' && c <= 'j')) {
				return fmt.Errorf("name %q has invalid 13th character %q", name, c)
			}
			continue
		}
		if !(c == '.' || (c >= '1' && c <= '5') || (c >= 'a' && c <= 'z')) {
			return fmt.Errorf("name %q has invalid character %q", name, c)
		}
	}
	if strings.HasSuffix(name, ".") {
		return fmt.Errorf("name %q must not end with '.'", name)
	}
	return nil
}

// ValidatePermissionLevel 校验 actor@permission 两段名称。
func ValidatePermissionLevel(raw string) error {
	actor, permission, found := strings.Cut(raw, "@")
	if !found {
		return fmt.Errorf("permission level %q missing '@'", raw)
	}
	if err := ValidateName(actor); err != nil {
		return fmt.Errorf("invalid actor: %w", err)
	}
	if err := ValidateName(permission); err != nil {
		return fmt.Errorf("invalid permission: %w", err)
	}
	return nil
}

// DecodeSignature 拆分 SIG_<curve>_<payload> 并 base58 解码 payload。
// 不校验 checksum。
func DecodeSignature(raw string) (SignatureCurve, []byte, error) {
	curveRaw, payload, ok := walletplugin.Signature(raw).Split()
	if !ok {
		return "", nil, errors.New("signature must be SIG_<curve>_<payload>")
	}
	curve, err := NormalizeCurve(curveRaw)
	if err != nil {
		return "", nil, err
	}
	decoded := base58.Decode(payload)
	if len(decoded) == 0 {
		return "", nil, errors.New("signature payload is not base58")
	}
	if curve != SignatureCurveWA && len(decoded) != fixedSignatureLen {
		return "", nil, fmt.Errorf("%s signature must decode to %d bytes, got %d", curve, fixedSignatureLen, len(decoded))
	}
	return curve, decoded, nil
}

// ValidateSignature 确保签名字符串结构合法。
func ValidateSignature(raw string) error {
	_, _, err := DecodeSignature(raw)
	return err
}
