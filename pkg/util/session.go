package util

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// SetSession 写入单个会话键值并保存
func SetSession(c *gin.Context, key string, value interface{}) {
	s := sessions.Default(c)
	s.Set(key, value)
	_ = s.Save()
}

// GetSession 读取会话键值，不存在时返回nil
func GetSession(c *gin.Context, key string) interface{} {
	return sessions.Default(c).Get(key)
}

// DeleteSession 删除会话键值并保存
func DeleteSession(c *gin.Context, key string) {
	s := sessions.Default(c)
	s.Delete(key)
	_ = s.Save()
}
