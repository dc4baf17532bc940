// Package metrics provides Prometheus metrics for the charizard shell.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Keyboard metrics
	scancodesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "charizard_scancodes_total",
			Help: "Total scancode bytes received from the keyboard port",
		},
		[]string{"result"},
	)

	keysTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "charizard_keys_total",
			Help: "Total decoded key-down events",
		},
		[]string{"kind"},
	)

	linesRead = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "charizard_lines_read_total",
			Help: "Total lines handed to the shell",
		},
	)

	// Console metrics
	scrollsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "charizard_console_scrolls_total",
			Help: "Total console scrolls",
		},
	)

	// Shell metrics
	commandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "charizard_commands_total",
			Help: "Total commands dispatched",
		},
		[]string{"command", "status"},
	)

	// File system metrics
	fsNodes = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "charizard_fs_nodes",
			Help: "Number of nodes in the in-memory file system",
		},
		[]string{"kind"},
	)
)

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordScancode records one scancode byte: "accepted", "released" or
// "decode_error".
func RecordScancode(result string) {
	scancodesTotal.WithLabelValues(result).Inc()
}

// RecordKey records a decoded key-down event by kind.
func RecordKey(kind string) {
	keysTotal.WithLabelValues(kind).Inc()
}

// RecordLineRead records a completed line.
func RecordLineRead() {
	linesRead.Inc()
}

// RecordScroll records a console scroll.
func RecordScroll() {
	scrollsTotal.Inc()
}

// RecordCommand records a dispatched command.
func RecordCommand(command string, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	commandsTotal.WithLabelValues(command, status).Inc()
}

// SetFSNodes sets the current file and directory counts.
func SetFSNodes(files, dirs int) {
	fsNodes.WithLabelValues("file").Set(float64(files))
	fsNodes.WithLabelValues("directory").Set(float64(dirs))
}
