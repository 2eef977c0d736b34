package walletplugin

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidChainID 表示 chain id 不是 32 字节的 hex 字符串。
	ErrInvalidChainID = errors.New("chain id must be 32 bytes of hex")
	// ErrInvalidPermissionLevel 表示权限不符合 actor@permission 格式。
	ErrInvalidPermissionLevel = errors.New("permission level must be actor@permission")
)

// ChainID 是 256 位的链标识（Checksum256），规范编码为小写 hex。
type ChainID [32]byte

// ChainIDFromHex 解析 hex 形式的 chain id。
func ChainIDFromHex(raw string) (ChainID, error) {
	var id ChainID
	decoded, err := hex.DecodeString(strings.TrimSpace(raw))
	if err != nil {
		return id, fmt.Errorf("%w: %v", ErrInvalidChainID, err)
	}
	if len(decoded) != len(id) {
		return id, fmt.Errorf("%w: got %d bytes", ErrInvalidChainID, len(decoded))
	}
	copy(id[:], decoded)
	return id, nil
}

// MustChainID 与 ChainIDFromHex 相同，解析失败时 panic。
func MustChainID(raw string) ChainID {
	id, err := ChainIDFromHex(raw)
	if err != nil {
		panic(err)
	}
	return id
}

func (id ChainID) String() string {
	return hex.EncodeToString(id[:])
}

// IsZero 报告 chain id 是否全零。
func (id ChainID) IsZero() bool {
	return id == ChainID{}
}

// MarshalText 实现 encoding.TextMarshaler。
func (id ChainID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText 实现 encoding.TextUnmarshaler。
func (id *ChainID) UnmarshalText(text []byte) error {
	parsed, err := ChainIDFromHex(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// PermissionLevel 表示 (actor, permission) 对。
type PermissionLevel struct {
	Actor      string
	Permission string
}

// ParsePermissionLevel 解析 actor@permission，按第一个 @ 切分。
func ParsePermissionLevel(raw string) (PermissionLevel, error) {
	actor, permission, found := strings.Cut(strings.TrimSpace(raw), "@")
	if !found || actor == "" || permission == "" {
		return PermissionLevel{}, fmt.Errorf("%w: %q", ErrInvalidPermissionLevel, raw)
	}
	return PermissionLevel{Actor: actor, Permission: permission}, nil
}

// MustPermissionLevel 与 ParsePermissionLevel 相同，解析失败时 panic。
func MustPermissionLevel(raw string) PermissionLevel {
	level, err := ParsePermissionLevel(raw)
	if err != nil {
		panic(err)
	}
	return level
}

func (p PermissionLevel) String() string {
	return p.Actor + "@" + p.Permission
}

// MarshalText 实现 encoding.TextMarshaler。
func (p PermissionLevel) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText 实现 encoding.TextUnmarshaler。
func (p *PermissionLevel) UnmarshalText(text []byte) error {
	parsed, err := ParsePermissionLevel(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Signature 是不透明的签名字符串，形如 SIG_<curve>_<base58 payload>。
type Signature string

// Split 拆分 SIG_<curve>_<payload>，不解码 payload。
func (s Signature) Split() (curve, payload string, ok bool) {
	rest, found := strings.CutPrefix(string(s), "SIG_")
	if !found {
		return "", "", false
	}
	curve, payload, found = strings.Cut(rest, "_")
	if !found || curve == "" || payload == "" {
		return "", "", false
	}
	return curve, payload, true
}

// Curve 返回签名的曲线段（K1/R1/WA），格式不符时返回空串。
func (s Signature) Curve() string {
	curve, _, _ := s.Split()
	return curve
}

func (s Signature) String() string { return string(s) }
