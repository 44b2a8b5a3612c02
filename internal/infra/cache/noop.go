package cache

import "context"

// Noop кэш-заглушка: всегда промах, запись игнорируется.
// Используется, когда Redis выключен в конфигурации.
type Noop struct{}

func (Noop) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	return false, nil
}

func (Noop) Set(ctx context.Context, key string, value interface{}) error {
	return nil
}

func (Noop) Generation(ctx context.Context, key string) (int64, error) {
	return 0, nil
}

func (Noop) Bump(ctx context.Context, key string) error {
	return nil
}

func (Noop) Ping(ctx context.Context) error {
	return nil
}
