// Package metrics provides build-pass counters and timings for the strip-prefix plugin.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so no call site needs a nil check:
//
//	pipeline := plugin.NewPipeline(plugins...)
//	pipeline.WithRecorder(metrics.NewPrometheusRecorder(reg))
//
// PrometheusRecorder registers its collectors on a caller-supplied registry.
// One-shot CLI runs export that registry with WriteTextfile for the node_exporter
// textfile collector; long-running watch sessions serve it with HTTPHandler.
package metrics
