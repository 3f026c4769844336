package config

// Config is the top level configuration tree.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	DB      DBConfig      `mapstructure:"database"`
	Feed    FeedConfig    `mapstructure:"feed"`
	Storage StorageConfig `mapstructure:"storage"`
	MinIO   MinIOConfig   `mapstructure:"minio"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type DBConfig struct {
	Driver      string `mapstructure:"driver"` // mysql or sqlite
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

// FeedConfig selects the timeline policy: "global" returns every tweet,
// "following" returns only tweets authored by followees of the requester.
type FeedConfig struct {
	Scope string `mapstructure:"scope"`
}

type StorageConfig struct {
	Backend string `mapstructure:"backend"` // disk or minio
	Dir     string `mapstructure:"dir"`     // disk backend root directory
}

type MinIOConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Bucket    string `mapstructure:"bucket"`
	UseSSL    bool   `mapstructure:"use_ssl"`
}
