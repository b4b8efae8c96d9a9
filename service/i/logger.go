package i

// Logger is the leveled logger used by services and adapters.
type Logger interface {
	Info(msg string)
	Warning(msg string)
	Error(msg string)
}
