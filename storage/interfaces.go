package storage

// ReportSink is the interface any report persistence backend must satisfy.
type ReportSink interface {
	Write(report string) error
}
