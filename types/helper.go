package types

type tracingKey string

// TracingID is the context key carrying the caller's tracing id,
// forwarded to sentry reports
const TracingID tracingKey = "tracing_id"
