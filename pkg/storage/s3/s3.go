package s3

import (
	"context"
	"io"
	"time"

	"github.com/zhuyun/ZhuYun/pkg/conf"
	"github.com/zhuyun/ZhuYun/pkg/storage"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/pkg/errors"
)

// Driver S3存储适配器
type Driver struct {
	Bucket string
	sess   *session.Session
	svc    *s3.S3
}

// NewDriver 根据配置文件创建S3存储适配器并初始化会话
func NewDriver() (*Driver, error) {
	sess, err := session.NewSession(&aws.Config{
		Credentials: credentials.NewStaticCredentials(
			conf.StorageConfig.AccessKey,
			conf.StorageConfig.SecretKey,
			"",
		),
		Endpoint: aws.String(conf.StorageConfig.Endpoint),
		Region:   aws.String(conf.StorageConfig.Region),
	})
	if err != nil {
		return nil, errors.Wrap(err, "无法初始化S3会话")
	}

	return &Driver{
		Bucket: conf.StorageConfig.Bucket,
		sess:   sess,
		svc:    s3.New(sess),
	}, nil
}

// Put 将文件流保存到S3
func (handler *Driver) Put(ctx context.Context, file io.Reader, dst string, size uint64) error {
	uploader := s3manager.NewUploader(handler.sess)

	_, err := uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket: aws.String(handler.Bucket),
		Key:    aws.String(dst),
		Body:   file,
	})
	if err != nil {
		return errors.Wrap(err, "无法上传文件到S3")
	}
	return nil
}

// Get 获取文件内容
func (handler *Driver) Get(ctx context.Context, path string) (storage.RSCloser, error) {
	// 通过预签名地址下载属于外链路径，这里仅支持小文件直读
	resp, err := handler.svc.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(handler.Bucket),
		Key:    aws.String(path),
	})
	if err != nil {
		return nil, errors.Wrap(err, "无法获取S3文件")
	}

	return &seekableBody{body: resp.Body}, nil
}

// Delete 删除文件
func (handler *Driver) Delete(ctx context.Context, path string) error {
	_, err := handler.svc.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(handler.Bucket),
		Key:    aws.String(path),
	})
	if err != nil {
		return errors.Wrap(err, "无法删除S3文件")
	}
	return nil
}

// Source 生成预签名下载地址
func (handler *Driver) Source(ctx context.Context, path string, ttl int64) (string, error) {
	req, _ := handler.svc.GetObjectRequest(&s3.GetObjectInput{
		Bucket: aws.String(handler.Bucket),
		Key:    aws.String(path),
	})

	signedURL, err := req.Presign(time.Duration(ttl) * time.Second)
	if err != nil {
		return "", errors.Wrap(err, "无法签名S3下载地址")
	}

	return signedURL, nil
}

// seekableBody 包装S3响应体为RSCloser
// S3流不支持随机读取，Seek仅支持当前位置查询
type seekableBody struct {
	body   io.ReadCloser
	offset int64
}

func (b *seekableBody) Read(p []byte) (int, error) {
	n, err := b.body.Read(p)
	b.offset += int64(n)
	return n, err
}

func (b *seekableBody) Seek(offset int64, whence int) (int64, error) {
	if whence == io.SeekCurrent && offset == 0 {
		return b.offset, nil
	}
	return 0, errors.New("S3文件流不支持随机读取")
}

func (b *seekableBody) Close() error {
	return b.body.Close()
}
