package config

// API represents feed API configuration
type API struct {
	Auth struct {
		Enabled       bool   `yaml:"enabled"`
		JWTSecret     string `yaml:"jwt_secret"`
		JWTExpiration int    `yaml:"jwt_expiration"`
	} `yaml:"auth"`
}
