package mockwallet

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics 记录 mock 插件被调用的次数。
type Metrics struct {
	loginTotal *prometheus.CounterVec
	signTotal  prometheus.Counter
}

// NewMetrics 构造 Metrics，reg 为空则注册到默认注册器。
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		loginTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wallet_plugin_mock",
			Name:      "login_total",
			Help:      "Number of login calls served by the mock wallet",
		}, []string{"chain_override", "permission_override"}),
		signTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "wallet_plugin_mock",
			Name:      "sign_total",
			Help:      "Number of sign calls served by the mock wallet",
		}),
	}
	reg.MustRegister(m.loginTotal, m.signTotal)
	return m
}

func (m *Metrics) incLogin(chainOverride, permissionOverride bool) {
	if m == nil {
		return
	}
	m.loginTotal.WithLabelValues(strconv.FormatBool(chainOverride), strconv.FormatBool(permissionOverride)).Inc()
}

func (m *Metrics) incSign() {
	if m == nil {
		return
	}
	m.signTotal.Inc()
}
