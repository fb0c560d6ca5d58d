package document

import "go.uber.org/zap"

// Option configures a MutableDocument.
type Option func(*MutableDocument)

// WithLogger sets the logger used to trace mutations at debug level.
// The default is a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(m *MutableDocument) {
		if log != nil {
			m.log = log
		}
	}
}

// WithIDGenerator sets the generator behind NewNodeID. The default is
// a UUIDGenerator.
func WithIDGenerator(gen IDGenerator) Option {
	return func(m *MutableDocument) {
		if gen != nil {
			m.gen = gen
		}
	}
}
