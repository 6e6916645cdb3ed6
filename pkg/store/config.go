package store

import (
	"fmt"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/habitus/pkg/timeutil"
)

// Config holds the settings read from .habitus and HABITUS_* variables.
type Config interface {
	BasePath() string
	RemindInterval() string
	GridWindow() string
}

// LoadConfig reads the configuration. A missing config file is not an error.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", "~/.habitus.db")
	v.SetDefault("remind.interval", timeutil.DefaultInterval)
	v.SetDefault("grid.window", timeutil.DefaultWindow)
	v.SetConfigName(".habitus") // .yaml is implicit
	v.SetEnvPrefix("HABITUS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override := os.Getenv("HABITUS_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}

	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	return &fileConfig{
		Path:     path,
		Interval: v.GetString("remind.interval"),
		Window:   v.GetString("grid.window"),
	}, nil
}

type fileConfig struct {
	Path     string `json:"path"`
	Interval string `json:"remindInterval"`
	Window   string `json:"gridWindow"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) RemindInterval() string {
	return f.Interval
}

func (f *fileConfig) GridWindow() string {
	return f.Window
}
