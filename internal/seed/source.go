package seed

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type Source interface {
	Name() string
	Read(ctx context.Context) ([]byte, error)
}

// ======================================================
// EMBEDDED
// ======================================================

type EmbeddedSource struct{}

func (EmbeddedSource) Name() string { return "embedded" }

func (EmbeddedSource) Read(context.Context) ([]byte, error) {
	return sampleJSON, nil
}

// ======================================================
// FILE
// ======================================================

type FileSource struct {
	Path string
}

func (s FileSource) Name() string { return s.Path }

func (s FileSource) Read(context.Context) ([]byte, error) {
	return os.ReadFile(s.Path)
}

// ======================================================
// S3
// ======================================================

// ObjectGetter is the slice of the S3 client the loader needs.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type S3Source struct {
	Client ObjectGetter
	Bucket string
	Key    string
}

func (s S3Source) Name() string { return "s3://" + s.Bucket + "/" + s.Key }

func (s S3Source) Read(ctx context.Context) ([]byte, error) {
	out, err := s.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(s.Key),
	})
	if err != nil {
		return nil, err
	}
	defer out.Body.Close()

	return io.ReadAll(out.Body)
}

type S3Options struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string // MinIO / LocalStack
}

func NewS3Client(opts S3Options) *s3.Client {
	o := s3.Options{
		Region: opts.Region,
	}

	if opts.AccessKeyID != "" {
		o.Credentials = credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, "")
	} else {
		o.Credentials = aws.AnonymousCredentials{}
	}

	if opts.Endpoint != "" {
		o.BaseEndpoint = aws.String(opts.Endpoint)
		o.UsePathStyle = true
	}

	return s3.New(o)
}

func ParseS3URI(uri string) (bucket, key string, err error) {
	rest, ok := strings.CutPrefix(uri, "s3://")
	if !ok {
		return "", "", fmt.Errorf("not an s3 uri: %q", uri)
	}

	bucket, key, _ = strings.Cut(rest, "/")
	if bucket == "" || key == "" {
		return "", "", fmt.Errorf("s3 uri needs bucket and key: %q", uri)
	}
	return bucket, key, nil
}

// NewSource escolhe a origem pelo valor de SEED_SOURCE:
// "" ou "embedded", "s3://bucket/key", ou um caminho de arquivo local.
func NewSource(raw string, opts S3Options) (Source, error) {
	raw = strings.TrimSpace(raw)

	switch {
	case raw == "" || raw == "embedded":
		return EmbeddedSource{}, nil

	case strings.HasPrefix(raw, "s3://"):
		bucket, key, err := ParseS3URI(raw)
		if err != nil {
			return nil, err
		}
		return S3Source{
			Client: NewS3Client(opts),
			Bucket: bucket,
			Key:    key,
		}, nil
	}

	return FileSource{Path: raw}, nil
}
