package prom

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hftecno/treasury/pkg/logger"
)

const (
	SystemRecords = "records"

	MetricWritesTotal          = "writes_total"
	MetricValidationRejections = "validation_rejections_total"
	MetricIntegrityConflicts   = "integrity_conflicts_total"
)

var (
	mu        sync.Mutex
	namespace = "none"

	Enabled bool

	counterVecs = make(map[string]*prometheus.CounterVec)
)

// Create registers the write/rejection counters. Label "entity" carries the
// table name, "op" the operation (create/update/delete).
func Create(env string, nameSpace string) error {
	mu.Lock()
	defer mu.Unlock()

	namespace = nameSpace
	Enabled = true

	labels := prometheus.Labels{"env": env}

	for _, name := range []string{MetricWritesTotal, MetricValidationRejections, MetricIntegrityConflicts} {
		cv := prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   SystemRecords,
			Name:        name,
			ConstLabels: labels,
		}, []string{"entity", "op"})
		if err := prometheus.Register(cv); err != nil {
			return err
		}
		counterVecs[name] = cv
	}
	return nil
}

func Inc(name, entity, op string) {
	if !Enabled {
		return
	}
	mu.Lock()
	cv, ok := counterVecs[name]
	mu.Unlock()
	if ok {
		cv.WithLabelValues(entity, op).Inc()
	}
}

// ListenAndServe exposes /metrics on a dedicated debug listener.
func ListenAndServe(addr string, url string) {
	if url == "" {
		url = "/metrics"
	}
	mux := http.NewServeMux()
	mux.Handle(url, promhttp.Handler())

	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			logger.Error("prom: metrics listener stopped", "error", err)
		}
	}()
}
