package shared

type ServerConfig struct {
	Rolodex RolodexConfig `mapstructure:"rolodex" validate:"required"`
	Sqlite  SqliteConfig  `mapstructure:"sqlite"`
}

type RolodexConfig struct {
	Listener ListenerConfig `mapstructure:"listener" validate:"required"`
}

type ListenerConfig struct {
	Port int `mapstructure:"port" validate:"required"`
}

// PassPhrase is optional; without it the sqlite file is opened unencrypted.
type SqliteConfig struct {
	PassPhrase string `mapstructure:"passPhrase"`
}
