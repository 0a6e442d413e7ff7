package model

// Config 对应于 config.yaml 的顶级结构
type Config struct {
	Token      string     `mapstructure:"TOKEN"`
	Commands   Commands   `mapstructure:"commands"`
	SuggestBot SuggestBot `mapstructure:"suggestBot"`
	Web        Web        `mapstructure:"web"`
}

// SuggestBot 对应 "suggestBot" 部分
type SuggestBot struct {
	ChannelID  string `mapstructure:"suggestion_channel_id"`
	DataDir    string `mapstructure:"data_dir"`
	BrandColor string `mapstructure:"brand_color"`
}

// Commands 对应 "commands" 部分
type Commands struct {
	AllowGuilds []string `mapstructure:"allowguilds"`
	Auth        Auth     `mapstructure:"auth"`
}

// Auth 对应 "auth" 部分
type Auth struct {
	Developers  []string `mapstructure:"Developers"`
	AdminsRoles []string `mapstructure:"AdminsRoles"`
}

// Web 对应 "web" 部分
type Web struct {
	Addr      string `mapstructure:"addr"`
	SiteTitle string `mapstructure:"site_title"`
	LogoURL   string `mapstructure:"logo_url"`
}
