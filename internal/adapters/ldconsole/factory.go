package ldconsole

import "go.trai.ch/ldx/internal/core/ports"

// Factory builds executors sharing one logger.
type Factory struct {
	logger ports.Logger
}

// NewFactory creates a Factory.
func NewFactory(logger ports.Logger) *Factory {
	return &Factory{logger: logger}
}

// NewConsole implements ports.ConsoleFactory.
func (f *Factory) NewConsole(path, encoding string) (ports.Console, error) {
	exe, err := NewExecutor(path, encoding, f.logger)
	if err != nil {
		return nil, err
	}
	return exe, nil
}
