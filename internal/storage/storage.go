package storage

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/bookden/books-api/internal/config"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Issued upload URLs go stale after this window.
const presignExpiry = 5 * time.Minute

type Client struct {
	mc           *minio.Client
	bucket       string
	publicDomain string
}

func New(cfg *config.Config) (*Client, error) {
	endpoint := cfg.StorageEndpoint
	secure := true
	if u, err := url.Parse(endpoint); err == nil && u.Host != "" {
		secure = u.Scheme != "http"
		endpoint = u.Host
	}

	mc, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.StorageAccessKey, cfg.StorageSecretKey, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, fmt.Errorf("storage client: %w", err)
	}

	return &Client{
		mc:           mc,
		bucket:       cfg.StorageBucket,
		publicDomain: cfg.StoragePublicDomain,
	}, nil
}

// PresignUpload issues a time-limited PUT URL for key plus the public
// URL the object is served from once uploaded.
func (c *Client) PresignUpload(ctx context.Context, key string) (uploadURL, publicURL string, err error) {
	u, err := c.mc.PresignedPutObject(ctx, c.bucket, key, presignExpiry)
	if err != nil {
		return "", "", err
	}

	uploadURL = strings.Replace(u.String(), "http://", "https://", 1)
	publicURL = fmt.Sprintf("https://%s/%s", c.publicDomain, key)
	return uploadURL, publicURL, nil
}
