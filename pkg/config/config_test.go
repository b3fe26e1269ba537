package config

import (
	"os"
	"path/filepath"
	"testing"
)

// chdirTemp 把工作目录切到临时目录，配置加载器在其中生成 data/conf.ini
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("获取工作目录失败: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("切换工作目录失败: %v", err)
	}
	t.Cleanup(func() { os.Chdir(old) })
	return dir
}

func TestNewConfigCreatesDefaults(t *testing.T) {
	dir := chdirTemp(t)

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig 失败: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "data", "conf.ini")); err != nil {
		t.Errorf("应生成默认配置文件: %v", err)
	}

	if got := cfg.GetString(KeyDBType); got != "sqlite" {
		t.Errorf("默认数据库类型 = %q, 期望 sqlite", got)
	}
	if got := cfg.GetInt(KeyExportMaxEnvelopeSize); got != 41943040 {
		t.Errorf("默认 envelope 上限 = %d, 期望 41943040", got)
	}
	if got := cfg.GetInt(KeyExportSeedEnvelopeID); got != 1 {
		t.Errorf("默认序号底座 = %d, 期望 1", got)
	}
	if got := cfg.GetString(KeyExportOutputDir); got != "data/envelopes" {
		t.Errorf("默认输出目录 = %q, 期望 data/envelopes", got)
	}
	if cfg.GetBool(KeyServerDebug) {
		t.Error("默认不应开启调试模式")
	}
}

func TestNewConfigReadsExistingFile(t *testing.T) {
	dir := chdirTemp(t)
	content := "[Export]\nMaxEnvelopeSize = 7000\nOutputDir = /tmp/out\n"
	os.MkdirAll(filepath.Join(dir, "data"), 0755)
	if err := os.WriteFile(filepath.Join(dir, "data", "conf.ini"), []byte(content), 0644); err != nil {
		t.Fatalf("写配置文件失败: %v", err)
	}

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig 失败: %v", err)
	}
	if got := cfg.GetInt(KeyExportMaxEnvelopeSize); got != 7000 {
		t.Errorf("MaxEnvelopeSize = %d, 期望 7000", got)
	}
	if got := cfg.GetString(KeyExportOutputDir); got != "/tmp/out" {
		t.Errorf("OutputDir = %q, 期望 /tmp/out", got)
	}
}

func TestNewConfigEnvOverride(t *testing.T) {
	chdirTemp(t)
	t.Setenv("TARIFF_EXPORT_SEEDENVELOPEID", "200")
	t.Setenv("TARIFF_DATABASE_TYPE", "postgres")

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig 失败: %v", err)
	}
	if got := cfg.GetInt(KeyExportSeedEnvelopeID); got != 200 {
		t.Errorf("环境变量应覆盖配置, SeedEnvelopeID = %d, 期望 200", got)
	}
	if got := cfg.GetString(KeyDBType); got != "postgres" {
		t.Errorf("环境变量应覆盖配置, Type = %q, 期望 postgres", got)
	}
}
