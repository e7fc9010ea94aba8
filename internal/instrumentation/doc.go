// Package instrumentation provides OpenTelemetry metrics and tracing for
// letterdrive.
//
// The Provider wires a meter provider and a tracer provider from a single
// Config, with exporters selectable via environment variables: Prometheus
// (default), OTLP, or stdout for metrics; OTLP, stdout, or none for traces.
// When instrumentation is disabled the Provider hands out no-op recorders,
// so call sites never need to branch on whether telemetry is on.
//
// Recorded metrics:
//
//   - http_requests_total / http_request_duration_seconds, labeled with the
//     route pattern rather than the raw path to keep cardinality bounded
//   - google_api_operations_total / google_api_operation_duration_seconds
//   - oauth_auth_total
//   - letter_operations_total / letter_operation_duration_seconds
//   - letter_pipeline_steps_total, one sample per step of the letter
//     creation pipeline
package instrumentation
