package i

// Logger is the levelled logger used by services and drivers.
type Logger interface {
	Info(msg string)
	Warning(msg string)
	Error(msg string)
}
