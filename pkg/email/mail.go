package email

import (
	"errors"
	"strings"
	"sync"

	model "github.com/zhuyun/ZhuYun/models"
)

// Driver 邮件发送驱动
type Driver interface {
	// Close 关闭驱动
	Close()
	// Send 发送邮件
	Send(to, title, body string) error
}

// Client 默认的邮件发送客户端
var Client Driver

// Lock 读写锁
var Lock sync.RWMutex

// ErrChanNotOpen 发送队列未开启
var ErrChanNotOpen = errors.New("邮件队列未开启")

// ErrNoActiveDriver 无可用邮件发送服务
var ErrNoActiveDriver = errors.New("无可用邮件发送服务")

// Send 发送邮件
func Send(to, title, body string) error {
	// 忽略通过QQ登录的邮箱
	if strings.HasSuffix(to, "@login.qq.com") {
		return nil
	}

	Lock.RLock()
	defer Lock.RUnlock()

	if Client == nil {
		return ErrNoActiveDriver
	}

	return Client.Send(to, title, body)
}

// NewCommentNotify 新建评论通知邮件
func NewCommentNotify(userName, projectName, authorName, content string) (string, string) {
	options := model.GetSettingByNames("siteName", "siteURL")
	title := "【" + options["siteName"] + "】您分享的项目收到了新评论"
	body := "您好，" + userName + "：<br><br>您分享的项目「" + projectName +
		"」收到了来自 " + authorName + " 的新评论：<br><br>" + content +
		"<br><br>" + options["siteName"] + " " + options["siteURL"]
	return title, body
}
