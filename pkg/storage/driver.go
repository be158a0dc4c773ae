package storage

import (
	"context"
	"io"

	"github.com/juju/ratelimit"
)

// Instance 当前启用的存储驱动，启动时根据配置装配
var Instance Driver

// RSCloser 存储端文件流，读取、寻址、关闭
type RSCloser interface {
	io.ReadSeeker
	io.Closer
}

// Driver 文档存储驱动接口
type Driver interface {
	// Put 将文件流保存到指定路径
	Put(ctx context.Context, file io.Reader, dst string, size uint64) error

	// Get 获取文件内容流
	Get(ctx context.Context, path string) (RSCloser, error)

	// Delete 删除文件
	Delete(ctx context.Context, path string) error

	// Source 获取文件的外链地址，ttl 为有效期秒数
	// 不支持外链的驱动返回错误
	Source(ctx context.Context, path string, ttl int64) (string, error)
}

// lrs 带有速度限制的RSCloser
type lrs struct {
	RSCloser
	r io.Reader
}

func (r *lrs) Read(p []byte) (int, error) {
	return r.r.Read(p)
}

// WithSpeedLimit 给原有文件流应用速度限制
// speed 单位 byte/s，0 为不限速
func WithSpeedLimit(rs RSCloser, speed int) RSCloser {
	if speed <= 0 {
		return rs
	}
	bucket := ratelimit.NewBucketWithRate(float64(speed), int64(speed))
	return &lrs{rs, ratelimit.Reader(rs, bucket)}
}
