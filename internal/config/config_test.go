package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordcapture/internal/model"
	"github.com/mcoot/wordcapture/internal/services/auth"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) writeFile(contents string) string {
	path := filepath.Join(s.T().TempDir(), "config.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func (s *ConfigTestSuite) TestLoad_Defaults() {
	cfg, err := Load("")

	s.Require().NoError(err)
	s.Equal(DefaultConfig().Server, cfg.Server)
	s.Equal(DefaultConfig().Storage, cfg.Storage)
	s.Empty(cfg.Auth.Keys)
	s.Equal(8080, cfg.Server.Port)
	s.Equal(StorageMemory, cfg.Storage.Type)

	rules, err := cfg.Rules()
	s.Require().NoError(err)
	s.Equal(model.DefaultRules(), rules)
}

func (s *ConfigTestSuite) TestLoad_File() {
	path := s.writeFile(`
server:
  port: 9090
  write_timeout: 2m
board:
  rows: 4
  cols: 4
  win_threshold: 10
generator:
  workers: 4
log:
  level: debug
  format: text
`)

	cfg, err := Load(path)

	s.Require().NoError(err)
	s.Equal(9090, cfg.Server.Port)
	s.Equal(2*time.Minute, cfg.Server.WriteTimeout)
	s.Equal(15*time.Second, cfg.Server.ReadTimeout)
	s.Equal(4, cfg.GeneratorConfig().Workers)

	rules, err := cfg.Rules()
	s.Require().NoError(err)
	s.Equal(4, rules.Rows())
	s.Equal(10, rules.WinThreshold())

	level, err := cfg.LogLevel()
	s.Require().NoError(err)
	s.Equal(slog.LevelDebug, level)
}

func (s *ConfigTestSuite) TestLoad_EnvOverridesFile() {
	path := s.writeFile("server:\n  port: 9090\n")
	s.T().Setenv("WCAP_SERVER_PORT", "7070")
	s.T().Setenv("WCAP_STORAGE_TYPE", "redis")
	s.T().Setenv("WCAP_STORAGE_REDIS_URL", "redis://cache:6379/1")
	s.T().Setenv("WCAP_STORAGE_REDIS_GAME_TTL", "90m")

	cfg, err := Load(path)

	s.Require().NoError(err)
	s.Equal(7070, cfg.ServerConfig().Port)
	s.Equal(StorageRedis, cfg.Storage.Type)

	redisCfg := cfg.RedisConfig()
	s.Equal("redis://cache:6379/1", redisCfg.URL)
	s.Equal(90*time.Minute, redisCfg.GameTTL)
	s.Equal(time.Hour, redisCfg.AnalysisTTL)
}

func (s *ConfigTestSuite) TestLoad_MissingFile() {
	_, err := Load(filepath.Join(s.T().TempDir(), "absent.yaml"))
	s.Error(err)
}

func (s *ConfigTestSuite) TestLoad_InvalidBoard() {
	s.T().Setenv("WCAP_BOARD_ROWS", "9")
	s.T().Setenv("WCAP_BOARD_COLS", "9")

	_, err := Load("")

	s.ErrorIs(err, ErrInvalidConfig)
	s.ErrorIs(err, model.ErrInvalidRules)
}

func (s *ConfigTestSuite) TestLoad_InvalidStorageType() {
	s.T().Setenv("WCAP_STORAGE_TYPE", "postgres")

	_, err := Load("")

	s.ErrorIs(err, ErrInvalidConfig)
}

func (s *ConfigTestSuite) TestLoad_InvalidLogFormat() {
	s.T().Setenv("WCAP_LOG_FORMAT", "xml")

	_, err := Load("")

	s.ErrorIs(err, ErrInvalidConfig)
}

func (s *ConfigTestSuite) TestRules_MajorityWhenThresholdZero() {
	cfg := DefaultConfig()
	cfg.Board.Rows, cfg.Board.Cols = 3, 4

	rules, err := cfg.Rules()

	s.Require().NoError(err)
	s.Equal(7, rules.WinThreshold())
}

func (s *ConfigTestSuite) TestAuthConfig_ParsesKeys() {
	hash, err := auth.HashKey("secret")
	s.Require().NoError(err)

	cfg := DefaultConfig()
	cfg.Auth.Keys = []string{"ci:" + hash, " "}

	authCfg, err := cfg.AuthConfig()

	s.Require().NoError(err)
	s.Require().Len(authCfg.Keys, 1)
	s.Equal("ci", authCfg.Keys[0].Name)
	s.Equal(5*time.Minute, authCfg.CacheTTL)
}

func (s *ConfigTestSuite) TestAuthConfig_MalformedKey() {
	cfg := DefaultConfig()
	cfg.Auth.Keys = []string{"no-hash"}

	_, err := cfg.AuthConfig()
	s.ErrorIs(err, auth.ErrMalformedKey)

	s.ErrorIs(cfg.Validate(), ErrInvalidConfig)
}
