package walletapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/aegis-sign/wallet-plugin-mock/pkg/apierrors"
	"github.com/aegis-sign/wallet-plugin-mock/pkg/walletplugin"
)

// HTTPHandler 将 WalletPlugin 暴露为 HTTP/JSON 接口，供非 Go 的 host 框架驱动。
type HTTPHandler struct {
	plugin walletplugin.WalletPlugin
	logger *slog.Logger
}

// NewHTTPHandler 构造 HTTP handler，logger 为空时使用 slog.Default()。
func NewHTTPHandler(plugin walletplugin.WalletPlugin, logger *slog.Logger) *HTTPHandler {
	if plugin == nil {
		panic("wallet plugin is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &HTTPHandler{plugin: plugin, logger: logger}
}

// Register 将 handler 注册到 mux。
func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/id", h.handleID)
	mux.HandleFunc("/config", h.handleConfig)
	mux.HandleFunc("/metadata", h.handleMetadata)
	mux.HandleFunc("/login", h.handleLogin)
	mux.HandleFunc("/sign", h.handleSign)
}

type chainBody struct {
	ID  string `json:"id"`
	URL string `json:"url,omitempty"`
}

type idResponseBody struct {
	ID string `json:"id"`
}

type loginRequestBody struct {
	Chain           *chainBody `json:"chain"`
	PermissionLevel *string    `json:"permissionLevel"`
}

type loginResponseBody struct {
	ChainID         string `json:"chainId"`
	PermissionLevel string `json:"permissionLevel"`
}

type signRequestBody struct {
	Chain   *chainBody `json:"chain"`
	Request []byte     `json:"request"`
}

type signResponseBody struct {
	Signatures []string `json:"signatures"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (h *HTTPHandler) handleID(w http.ResponseWriter, r *http.Request) {
	if !h.requireMethod(w, r, http.MethodGet) {
		return
	}
	h.writeJSON(w, http.StatusOK, idResponseBody{ID: h.plugin.ID()})
}

func (h *HTTPHandler) handleConfig(w http.ResponseWriter, r *http.Request) {
	if !h.requireMethod(w, r, http.MethodGet) {
		return
	}
	h.writeJSON(w, http.StatusOK, h.plugin.Config())
}

func (h *HTTPHandler) handleMetadata(w http.ResponseWriter, r *http.Request) {
	if !h.requireMethod(w, r, http.MethodGet) {
		return
	}
	h.writeJSON(w, http.StatusOK, h.plugin.Metadata())
}

func (h *HTTPHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if !h.requireMethod(w, r, http.MethodPost) {
		return
	}
	var body loginRequestBody
	if !h.decodeOptional(w, r, &body) {
		return
	}
	var loginCtx walletplugin.LoginContext
	if body.Chain != nil {
		chain, err := convertChain(body.Chain)
		if err != nil {
			h.writeAPIError(w, err)
			return
		}
		loginCtx.Chain = &chain
	}
	if body.PermissionLevel != nil {
		level, err := walletplugin.ParsePermissionLevel(*body.PermissionLevel)
		if err != nil {
			h.writeAPIError(w, apierrors.Wrap(apierrors.CodeInvalidArgument, err.Error(), err))
			return
		}
		loginCtx.PermissionLevel = &level
	}
	resp, err := h.plugin.Login(r.Context(), loginCtx)
	if err != nil {
		h.writeUnknownError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, loginResponseBody{
		ChainID:         resp.ChainID.String(),
		PermissionLevel: resp.PermissionLevel.String(),
	})
}

func (h *HTTPHandler) handleSign(w http.ResponseWriter, r *http.Request) {
	if !h.requireMethod(w, r, http.MethodPost) {
		return
	}
	var body signRequestBody
	if !h.decodeOptional(w, r, &body) {
		return
	}
	var chain walletplugin.ChainDefinition
	if body.Chain != nil {
		parsed, err := convertChain(body.Chain)
		if err != nil {
			h.writeAPIError(w, err)
			return
		}
		chain = parsed
	}
	resp, err := h.plugin.Sign(r.Context(), chain, walletplugin.ResolvedSigningRequest{Payload: body.Request})
	if err != nil {
		h.writeUnknownError(w, err)
		return
	}
	payload := signResponseBody{Signatures: make([]string, 0, len(resp.Signatures))}
	for _, sig := range resp.Signatures {
		payload.Signatures = append(payload.Signatures, sig.String())
	}
	h.writeJSON(w, http.StatusOK, payload)
}

func (h *HTTPHandler) requireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	h.writeAPIError(w, apierrors.New(apierrors.CodeMethodNotAllowed, method+" required"))
	return false
}

// decodeOptional 解析单个 JSON 值，空 body 视为空请求，其后不得有多余数据。
func (h *HTTPHandler) decodeOptional(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Body == nil || r.Body == http.NoBody {
		return true
	}
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(dst); err != nil {
		if err == io.EOF {
			return true
		}
		h.writeAPIError(w, apierrors.Wrap(apierrors.CodeInvalidArgument, "invalid JSON body", err))
		return false
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		h.writeAPIError(w, apierrors.New(apierrors.CodeInvalidArgument, "unexpected data after JSON body"))
		return false
	}
	return true
}

func (h *HTTPHandler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func (h *HTTPHandler) writeUnknownError(w http.ResponseWriter, err error) {
	if apiErr, ok := apierrors.FromError(err); ok {
		h.writeAPIError(w, apiErr)
		return
	}
	h.logger.Error("wallet plugin call failed", slog.Any("err", err))
	h.writeAPIError(w, apierrors.New(apierrors.CodeInternal, "internal error"))
}

func (h *HTTPHandler) writeAPIError(w http.ResponseWriter, apiErr *apierrors.Error) {
	if apiErr == nil {
		apiErr = apierrors.New(apierrors.CodeInternal, "internal error")
	}
	h.writeJSON(w, apierrors.HTTPStatus(apiErr.Code), errorResponse{
		Code:    string(apiErr.Code),
		Message: apiErr.Error(),
	})
}

func convertChain(body *chainBody) (walletplugin.ChainDefinition, *apierrors.Error) {
	id, err := walletplugin.ChainIDFromHex(body.ID)
	if err != nil {
		return walletplugin.ChainDefinition{}, apierrors.Wrap(apierrors.CodeInvalidArgument, err.Error(), err)
	}
	return walletplugin.ChainDefinition{ID: id, URL: body.URL}, nil
}
