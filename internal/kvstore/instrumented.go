package kvstore

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	opsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fitcore_kv_operations_total",
		Help: "Backing store operations by op and result.",
	}, []string{"op", "result"})

	opDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fitcore_kv_operation_duration_seconds",
		Help:    "Backing store operation latency.",
		Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5},
	}, []string{"op"})

	valueBytes = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fitcore_kv_value_bytes",
		Help:    "Size of values written per top-level key family.",
		Buckets: prometheus.ExponentialBuckets(64, 4, 8),
	}, []string{"family"})
)

// Instrumented records Prometheus metrics around another Store.
type Instrumented struct {
	next     Store
	prefixes []string
}

// NewInstrumented wraps next. Keys starting with one of scopedPrefixes are
// reported under the prefix alone so label cardinality stays bounded.
func NewInstrumented(next Store, scopedPrefixes ...string) *Instrumented {
	return &Instrumented{next: next, prefixes: scopedPrefixes}
}

func (i *Instrumented) Get(key string) (string, bool, error) {
	defer observe("get", time.Now())
	v, ok, err := i.next.Get(key)
	count("get", err)
	return v, ok, err
}

func (i *Instrumented) Set(key, value string) error {
	defer observe("set", time.Now())
	err := i.next.Set(key, value)
	count("set", err)
	if err == nil {
		valueBytes.WithLabelValues(i.family(key)).Observe(float64(len(value)))
	}
	return err
}

func (i *Instrumented) Delete(key string) error {
	defer observe("delete", time.Now())
	err := i.next.Delete(key)
	count("delete", err)
	return err
}

func (i *Instrumented) Ping() error  { return i.next.Ping() }
func (i *Instrumented) Close() error { return i.next.Close() }

func (i *Instrumented) family(key string) string {
	for _, prefix := range i.prefixes {
		if strings.HasPrefix(key, prefix) {
			return strings.TrimSuffix(prefix, "_")
		}
	}
	return key
}

func observe(op string, start time.Time) {
	opDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func count(op string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	opsTotal.WithLabelValues(op, result).Inc()
}
