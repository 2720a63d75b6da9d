package config

import (
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/palemoky/baralho/internal/counter"
)

// 默认值
const (
	defaultText      = "Python: simples e correta"
	defaultWord      = "abacaxi"
	defaultRange     = 10
	defaultLogDir    = ".baralho"
	envPrefix        = "BARALHO_"
	defaultAltScreen = true
)

// Config 演示程序配置
type Config struct {
	UI      UIConfig      `yaml:"ui"`
	Demo    DemoConfig    `yaml:"demo"`
	Counter CounterConfig `yaml:"counter"`
	Log     LogConfig     `yaml:"log"`
}

// UIConfig 终端界面配置
type UIConfig struct {
	AltScreen *bool `yaml:"alt_screen"`
}

// DemoConfig 演示用的序列
type DemoConfig struct {
	Text  string `yaml:"text"`  // 字符序列
	Word  string `yaml:"word"`  // 计数演示的单词
	Range int    `yaml:"range"` // 数字序列长度
}

// CounterConfig 选择计数器的种类
type CounterConfig struct {
	Tolerant   bool `yaml:"tolerant"`
	Totalizing bool `yaml:"totalizing"`
}

// Variant 返回对应的计数器种类
func (c CounterConfig) Variant() counter.Variant {
	return counter.Variant{Tolerant: c.Tolerant, Totalizing: c.Totalizing}
}

// LogConfig 日志配置
type LogConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"` // 相对用户主目录
}

// UseAltScreen 是否使用全屏模式
func (c *UIConfig) UseAltScreen() bool {
	if c.AltScreen == nil {
		return defaultAltScreen
	}
	return *c.AltScreen
}

// Load 加载配置文件
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	return &cfg, nil
}

// Default 返回默认配置
func Default() *Config {
	var cfg Config
	cfg.applyEnv()
	cfg.applyDefaults()
	return &cfg
}

func (c *Config) applyDefaults() {
	if c.Demo.Text == "" {
		c.Demo.Text = defaultText
	}
	if c.Demo.Word == "" {
		c.Demo.Word = defaultWord
	}
	if c.Demo.Range <= 0 {
		c.Demo.Range = defaultRange
	}
	if c.Log.Dir == "" {
		c.Log.Dir = defaultLogDir
	}
}

// applyEnv 环境变量覆盖配置文件
func (c *Config) applyEnv() {
	if v, ok := lookupEnv("DEMO_TEXT"); ok {
		c.Demo.Text = v
	}
	if v, ok := lookupEnv("DEMO_WORD"); ok {
		c.Demo.Word = v
	}
	if v, ok := lookupEnv("DEMO_RANGE"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			c.Demo.Range = n
		}
	}
	if v, ok := lookupBool("UI_ALT_SCREEN"); ok {
		c.UI.AltScreen = &v
	}
	if v, ok := lookupBool("COUNTER_TOLERANT"); ok {
		c.Counter.Tolerant = v
	}
	if v, ok := lookupBool("COUNTER_TOTALIZING"); ok {
		c.Counter.Totalizing = v
	}
	if v, ok := lookupBool("LOG_ENABLED"); ok {
		c.Log.Enabled = v
	}
	if v, ok := lookupEnv("LOG_DIR"); ok {
		c.Log.Dir = v
	}
}

func lookupEnv(key string) (string, bool) {
	v, ok := os.LookupEnv(envPrefix + key)
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return v, true
}

func lookupBool(key string) (bool, bool) {
	v, ok := lookupEnv(key)
	if !ok {
		return false, false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, false
	}
	return b, true
}
