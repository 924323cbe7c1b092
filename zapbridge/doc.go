// Package zapbridge filters go.uber.org/zap output through a
// per-logger-name Resolver. Wrapping a zapcore.Core with NewCore (or
// applying the WrapCore option) makes named zap loggers obey a
// GO_LOG-style directive string, with a custom TraceLevel below zap's
// Debug. Encoding and writing remain entirely the inner core's job.
package zapbridge
