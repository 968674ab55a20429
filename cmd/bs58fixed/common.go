package main

import (
	"fmt"

	"github.com/spf13/viper"
	"github.com/streamingfast/bs58fixed"
	"go.uber.org/zap"
)

func getSize() (*bs58fixed.Registration, error) {
	name := viper.GetString("global-size")
	if name == "" {
		return nil, fmt.Errorf("size is required")
	}

	reg, err := bs58fixed.Lookup(name)
	if err != nil {
		return nil, fmt.Errorf("size: %w", err)
	}

	zlog.Debug("using size", zap.String("name", reg.Name), zap.Int("max_str_len", reg.MaxStrLen), zap.Int("buf_len", reg.BufLen))
	return reg, nil
}
