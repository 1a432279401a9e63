package config

type config struct {
	Server server `yaml:"server" mapstructure:"server"`
	Mysql  mysql  `yaml:"mysql" mapstructure:"mysql"`
	Redis  redis  `yaml:"redis" mapstructure:"redis"`
	JWT    jwt    `yaml:"jwt" mapstructure:"jwt"`
	Google google `yaml:"google" mapstructure:"google"`
}

type server struct {
	Addr         string   `yaml:"addr"`
	AllowOrigins []string `yaml:"allow_origins"`
}

type mysql struct {
	Addr     string `yaml:"addr"`
	Database string `yaml:"database"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Charset  string `yaml:"charset"`
}

type redis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
}

type jwt struct {
	Secret    string `yaml:"secret"`
	ExpireMin int    `yaml:"expire_min"`
}

type google struct {
	ClientId string `yaml:"client_id"`
}
