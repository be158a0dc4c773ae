package local

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/zhuyun/ZhuYun/pkg/storage"
	"github.com/zhuyun/ZhuYun/pkg/util"

	"github.com/pkg/errors"
)

const (
	// Perm 新建目录的权限
	Perm = 0744
)

// Driver 本地存储适配器
type Driver struct {
	// Dir 存储根目录
	Dir string
}

// NewDriver 创建本地存储适配器
func NewDriver(dir string) *Driver {
	return &Driver{Dir: dir}
}

func (handler *Driver) abs(path string) string {
	return util.RelativePath(filepath.Join(handler.Dir, filepath.FromSlash(path)))
}

// Get 获取文件内容
func (handler *Driver) Get(ctx context.Context, path string) (storage.RSCloser, error) {
	file, err := os.Open(handler.abs(path))
	if err != nil {
		util.Log().Debug("无法打开文件：%s", err)
		return nil, err
	}

	return file, nil
}

// Put 将文件流保存到指定目录
func (handler *Driver) Put(ctx context.Context, file io.Reader, dst string, size uint64) error {
	dst = handler.abs(dst)

	// 检查是否有重名冲突
	if util.Exists(dst) {
		util.Log().Warning("物理同名文件已存在或不可用: %s", dst)
		return errors.New("物理同名文件已存在或不可用")
	}

	// 如果目标目录不存在，创建
	basePath := filepath.Dir(dst)
	if !util.Exists(basePath) {
		if err := os.MkdirAll(basePath, Perm); err != nil {
			util.Log().Warning("无法创建目录，%s", err)
			return err
		}
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_RDWR, Perm)
	if err != nil {
		util.Log().Warning("无法打开或创建文件，%s", err)
		return err
	}
	defer out.Close()

	// 写入文件内容
	_, err = io.Copy(out, file)
	return err
}

// Delete 删除文件
func (handler *Driver) Delete(ctx context.Context, path string) error {
	err := os.Remove(handler.abs(path))
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "无法删除物理文件")
	}
	return nil
}

// Source 本地存储不支持外链，由应用自身流式输出
func (handler *Driver) Source(ctx context.Context, path string, ttl int64) (string, error) {
	return "", errors.New("本地存储不支持外链")
}
