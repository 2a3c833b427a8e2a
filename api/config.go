package api

import (
	"sync"

	"github.com/alex-pricope/idea-board/board"
	"github.com/alex-pricope/idea-board/logging"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

type Config struct {
	StorageConfig
	ServerConfig
	BoardConfig
	LogConfig
}

type StorageConfig struct {
	Backend     string
	FilePath    string
	RedisURL    string
	RedisPrefix string
	TableName   string
	LedgerKey   string
}

type ServerConfig struct {
	Port    int
	GinMode string
}

type BoardConfig struct {
	Seed bool
}

type LogConfig struct {
	Level string
}

const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendDynamo = "dynamo"
)

var settingsOnce sync.Once

func ReadConfig() *Config {

	var conf = &Config{
		StorageConfig: StorageConfig{
			Backend:     getStringOrDefault("storage.backend", BackendMemory),
			FilePath:    getStringOrDefault("storage.filePath", "./data/board.json"),
			RedisURL:    getStringOrDefault("storage.redisURL", "redis://localhost:6379/0"),
			RedisPrefix: getStringOrDefault("storage.redisPrefix", "ideaboard:"),
			TableName:   getStringOrDefault("storage.tableName", "IdeaBoard"),
			LedgerKey:   getStringOrDefault("storage.ledgerKey", board.DefaultLedgerKey),
		},
		ServerConfig: ServerConfig{
			Port:    getIntOrDefault("server.port", 8080),
			GinMode: getStringOrDefault("server.ginMode", gin.DebugMode),
		},
		BoardConfig: BoardConfig{
			Seed: getBoolOrDefault("board.seed", true),
		},
		LogConfig: LogConfig{
			Level: getStringOrDefault("log.level", "debug"),
		},
	}

	settingsOnce.Do(func() {
		logging.Log.Print("Reading settings!")
	})

	return conf
}

func getIntOrDefault(name string, def int) int {
	if viper.IsSet(name) {
		v := viper.GetInt(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}

func getBoolOrDefault(name string, def bool) bool {
	if viper.IsSet(name) {
		v := viper.GetBool(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}

func getStringOrDefault(name string, def string) string {
	if viper.IsSet(name) {
		v := viper.GetString(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}
