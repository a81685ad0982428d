package config

import (
	"os"
	"time"

	"github.com/sirkon/errors"
	"gopkg.in/yaml.v3"

	"github.com/sirkon/ulib/internal/bufmng"
	"github.com/sirkon/ulib/internal/fdset"
	"github.com/sirkon/ulib/internal/lcg"
	"github.com/sirkon/ulib/internal/pipes"
	"github.com/sirkon/ulib/internal/sched"
)

// Config настройки системы.
type Config struct {
	// Tick длительность тика планировщика.
	Tick time.Duration `yaml:"tick"`
	// Descriptors вместимость таблицы дескрипторов и наборов для select.
	Descriptors int `yaml:"descriptors"`
	// PipeSize размер буфера канала в байтах.
	PipeSize int `yaml:"pipe_size"`
	// ChunkSize размер порции форматированного вывода в дескриптор.
	ChunkSize int `yaml:"chunk_size"`
	// Seed начальное состояние генератора случайных чисел.
	Seed uint64 `yaml:"seed"`
	// Verbose отладочное логирование.
	Verbose bool `yaml:"verbose"`
}

// Default настройки по-умолчанию.
func Default() Config {
	return Config{
		Tick:        sched.DefaultTick,
		Descriptors: fdset.DefaultCapacity,
		PipeSize:    pipes.DefaultPipeSize,
		ChunkSize:   bufmng.DefaultFrame,
		Seed:        lcg.DefaultState,
	}
}

// Parse разбор настроек из YAML. Отсутствующие поля получают значения по-умолчанию.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "unmarshal config")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrap(err, "validate config")
	}

	return cfg, nil
}

// Load чтение настроек из файла.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "read config file").Str("path", path)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, errors.Wrap(err, "parse config file").Str("path", path)
	}

	return cfg, nil
}

// Validate проверка настроек.
func (c Config) Validate() error {
	switch {
	case c.Tick <= 0:
		return errors.New("tick must be positive").Str("tick", c.Tick.String())
	case c.Descriptors < 3:
		return errors.New("descriptor table must hold at least standard descriptors").Int("descriptors", c.Descriptors)
	case c.PipeSize <= 0:
		return errors.New("pipe size must be positive").Int("pipe-size", c.PipeSize)
	case c.ChunkSize <= 0:
		return errors.New("chunk size must be positive").Int("chunk-size", c.ChunkSize)
	}

	return nil
}
