package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// s3API is the subset of the S3 client used by S3.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3 implements FileStore on Amazon S3. Paths are s3://bucket/key URIs; the
// configured prefix is prepended to every key.
type S3 struct {
	client s3API
	prefix string
}

// NewS3 creates an S3-backed store using the default AWS credential chain.
func NewS3(ctx context.Context, region, prefix string) (*S3, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{}
	if region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return newS3WithClient(s3.NewFromConfig(cfg), prefix), nil
}

func newS3WithClient(client s3API, prefix string) *S3 {
	return &S3{client: client, prefix: normalizePrefix(prefix)}
}

// ReadFile downloads the object at uri.
func (s *S3) ReadFile(ctx context.Context, uri string) ([]byte, error) {
	bucket, key, err := s.locate(uri)
	if err != nil {
		return nil, &FileError{Op: "read", Path: uri, Cause: err}
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noSuchKey *s3types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, notFound("read", uri, err)
		}
		return nil, &FileError{Op: "read", Path: uri, Cause: fmt.Errorf("s3 get object bucket=%s key=%s: %w", bucket, key, err)}
	}
	defer func() { _ = out.Body.Close() }()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, &FileError{Op: "read", Path: uri, Cause: err}
	}
	return data, nil
}

// WriteFile uploads data to uri.
func (s *S3) WriteFile(ctx context.Context, uri string, data []byte) error {
	bucket, key, err := s.locate(uri)
	if err != nil {
		return &FileError{Op: "write", Path: uri, Cause: err}
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:               aws.String(bucket),
		Key:                  aws.String(key),
		Body:                 bytes.NewReader(data),
		ContentType:          aws.String(contentTypeFor(key)),
		ServerSideEncryption: s3types.ServerSideEncryptionAes256,
	})
	if err != nil {
		return &FileError{Op: "write", Path: uri, Cause: fmt.Errorf("s3 put object bucket=%s key=%s: %w", bucket, key, err)}
	}
	return nil
}

func (s *S3) locate(uri string) (string, string, error) {
	bucket, key, err := ParseS3URI(uri)
	if err != nil {
		return "", "", err
	}
	if s.prefix != "" {
		key = path.Join(s.prefix, key)
	}
	return bucket, key, nil
}

func normalizePrefix(prefix string) string {
	return strings.Trim(strings.TrimSpace(prefix), "/")
}

func contentTypeFor(key string) string {
	switch strings.ToLower(path.Ext(key)) {
	case ".html", ".htm":
		return "text/html; charset=utf-8"
	case ".json":
		return "application/json"
	case ".pdf":
		return "application/pdf"
	}
	return "application/octet-stream"
}
