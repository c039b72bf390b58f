package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Environment variables honoured by the server binary.
const (
	EnvPort           = "API_PORT"
	EnvMode           = "API_ENV"
	EnvStaticDir      = "STATIC_DIR"
	EnvAllowedOrigins = "ALLOWED_ORIGINS"
	EnvConfigPath     = "CONFIG_PATH"
	EnvCacheEnabled   = "ENABLE_RENDER_CACHE"
)

// NewViper returns a viper instance bound to the environment variables above.
func NewViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	for _, key := range []string{EnvPort, EnvMode, EnvStaticDir, EnvAllowedOrigins, EnvConfigPath, EnvCacheEnabled} {
		_ = v.BindEnv(key)
	}
	return v
}

// ServerOverrides reads server settings from v. Unset values stay zero so
// MergeServer leaves the file config alone.
func ServerOverrides(v *viper.Viper) ServerConfig {
	var out ServerConfig
	out.Port = v.GetString(EnvPort)
	out.Env = v.GetString(EnvMode)
	out.StaticDir = v.GetString(EnvStaticDir)
	if raw := v.GetString(EnvAllowedOrigins); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				out.AllowedOrigins = append(out.AllowedOrigins, o)
			}
		}
	}
	return out
}

// LoadFromEnv resolves the config path from v, loads it and applies the
// environment overrides. The result is validated.
func LoadFromEnv(v *viper.Viper, path string) (*Config, error) {
	if path == "" {
		path = v.GetString(EnvConfigPath)
	}
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.Server = MergeServer(c.Server, ServerOverrides(v))
	if v.IsSet(EnvCacheEnabled) {
		c.Cache.Enabled = v.GetBool(EnvCacheEnabled)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
