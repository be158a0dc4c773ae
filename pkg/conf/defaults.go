package conf

// DatabaseConfig 数据库配置
var DatabaseConfig = &database{
	Type:    "UNSET",
	Charset: "utf8mb4",
	DBFile:  "zhuyun.db",
	Port:    3306,
}

// SystemConfig 系统公用配置
var SystemConfig = &system{
	Debug:    false,
	Listen:   ":5520",
	LogLevel: "info",
}

// RedisConfig Redis服务器配置
var RedisConfig = &redis{
	Network:  "tcp",
	Server:   "",
	Password: "",
	DB:       "0",
}

// CORSConfig 跨域配置
var CORSConfig = &cors{
	AllowOrigins:     []string{"UNSET"},
	AllowMethods:     []string{"PUT", "POST", "GET", "OPTIONS", "PATCH", "DELETE"},
	AllowHeaders:     []string{"Cookie", "Content-Length", "Content-Type"},
	AllowCredentials: false,
	ExposeHeaders:    nil,
}

// StorageConfig 文档存储配置
var StorageConfig = &storage{
	Type: "local",
	Dir:  "uploads",
}

// 初始配置文件内容
const defaultConf = `[System]
Debug = false
Listen = :5520
SessionSecret = {SessionSecret}
HashIDSalt = {HashIDSalt}
LogLevel = info
`
