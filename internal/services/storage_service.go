// internal/services/storage_service.go
package services

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/apfam/apfam-backend/internal/config"
)

// ImageCleaner is the best-effort deletion hook handed to the entity
// writers. Implementations must never block a save on failure; errors are
// logged, not returned.
type ImageCleaner interface {
	CleanupObject(publicURL string)
}

type StorageService struct {
	s3Client *s3.S3
	config   *config.Config
}

type UploadResult struct {
	URL      string `json:"url"`
	Key      string `json:"key"`
	Size     int64  `json:"size"`
	MimeType string `json:"mime_type"`
}

type UploadOptions struct {
	Folder       string
	MaxSize      int64 // in bytes
	AllowedTypes []string
}

func NewStorageService(config *config.Config) (*StorageService, error) {
	if config.Storage.AccessKeyID == "" {
		// Return service without S3 for local development
		return &StorageService{config: config}, nil
	}

	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(config.Storage.Region),
		Credentials: credentials.NewStaticCredentials(
			config.Storage.AccessKeyID,
			config.Storage.SecretAccessKey,
			"",
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &StorageService{
		s3Client: s3.New(sess),
		config:   config,
	}, nil
}

func (s *StorageService) UploadFile(file multipart.File, header *multipart.FileHeader, options UploadOptions) (*UploadResult, error) {
	// Validate file size
	if options.MaxSize > 0 && header.Size > options.MaxSize {
		return nil, fmt.Errorf("file size %d bytes exceeds maximum allowed size %d bytes", header.Size, options.MaxSize)
	}

	// Validate file type
	if len(options.AllowedTypes) > 0 {
		fileExt := strings.ToLower(filepath.Ext(header.Filename))
		allowed := false
		for _, allowedType := range options.AllowedTypes {
			if fileExt == allowedType {
				allowed = true
				break
			}
		}
		if !allowed {
			return nil, fmt.Errorf("file type %s is not allowed", fileExt)
		}
	}

	key := s.generateFileName(header.Filename, options.Folder)

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	contentType := header.Header.Get("Content-Type")

	if s.s3Client == nil {
		// Local development - no bucket configured
		return &UploadResult{
			URL:      fmt.Sprintf("http://localhost:%s/uploads/%s", s.config.Server.Port, key),
			Key:      key,
			Size:     int64(len(fileBytes)),
			MimeType: contentType,
		}, nil
	}

	_, err = s.s3Client.PutObject(&s3.PutObjectInput{
		Bucket:        aws.String(s.config.Storage.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(fileBytes),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(fileBytes))),
		ACL:           aws.String("public-read"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload to storage: %w", err)
	}

	return &UploadResult{
		URL:      s.publicURL(key),
		Key:      key,
		Size:     int64(len(fileBytes)),
		MimeType: contentType,
	}, nil
}

// CleanupObject deletes the object behind a public URL. It is best-effort
// only: parse failures and delete failures are logged and swallowed, so a
// stale image never blocks the save that orphaned it.
func (s *StorageService) CleanupObject(publicURL string) {
	if publicURL == "" {
		return
	}

	bucket, key, err := ParseObjectURL(publicURL)
	if err != nil {
		logrus.WithField("url", publicURL).WithError(err).Warn("storage cleanup: could not parse object URL")
		return
	}

	if s.s3Client == nil {
		logrus.WithFields(logrus.Fields{"bucket": bucket, "key": key}).Info("storage cleanup skipped: no storage client configured")
		return
	}

	_, err = s.s3Client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{"bucket": bucket, "key": key}).WithError(err).Warn("storage cleanup: delete failed")
	}
}

// ParseObjectURL reverse-parses a public object URL into bucket and key.
// It understands the "/object/public/<bucket>/<key...>" path layout used for
// configured public endpoints, and falls back to virtual-hosted S3 URLs
// ("https://<bucket>.s3.<region>.amazonaws.com/<key>").
func ParseObjectURL(publicURL string) (bucket, key string, err error) {
	u, err := url.Parse(publicURL)
	if err != nil {
		return "", "", fmt.Errorf("invalid object URL: %w", err)
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i, part := range parts {
		if part != "public" || i == 0 || parts[i-1] != "object" {
			continue
		}
		if i+2 > len(parts)-1 {
			return "", "", fmt.Errorf("object URL %q has no key after bucket", publicURL)
		}
		rawKey := strings.Join(parts[i+2:], "/")
		decoded, decErr := url.PathUnescape(rawKey)
		if decErr != nil {
			decoded = rawKey
		}
		return parts[i+1], decoded, nil
	}

	// Virtual-hosted style: bucket is the first host label.
	if strings.Contains(u.Host, ".s3.") && len(parts) > 0 && parts[0] != "" {
		bucket = strings.SplitN(u.Host, ".", 2)[0]
		return bucket, strings.Join(parts, "/"), nil
	}

	return "", "", fmt.Errorf("unrecognized object URL format: %q", publicURL)
}

func (s *StorageService) GetDefaultUploadOptions(folder string) UploadOptions {
	switch folder {
	case "avatars":
		return UploadOptions{
			Folder:       "avatars",
			MaxSize:      2 * 1024 * 1024, // 2MB
			AllowedTypes: []string{".jpg", ".jpeg", ".png", ".webp"},
		}
	case "products":
		return UploadOptions{
			Folder:       "products",
			MaxSize:      5 * 1024 * 1024, // 5MB
			AllowedTypes: []string{".jpg", ".jpeg", ".png", ".webp"},
		}
	case "events":
		return UploadOptions{
			Folder:       "events",
			MaxSize:      5 * 1024 * 1024, // 5MB
			AllowedTypes: []string{".jpg", ".jpeg", ".png", ".webp"},
		}
	default:
		return UploadOptions{
			Folder:       "general",
			MaxSize:      5 * 1024 * 1024, // 5MB
			AllowedTypes: []string{".jpg", ".jpeg", ".png", ".webp"},
		}
	}
}

func (s *StorageService) generateFileName(originalName, folder string) string {
	id := uuid.New()
	ext := strings.ToLower(filepath.Ext(originalName))
	timestamp := time.Now().Format("20060102")
	filename := fmt.Sprintf("%s_%s%s", timestamp, id.String()[:8], ext)

	if folder != "" {
		return fmt.Sprintf("%s/%s", folder, filename)
	}
	return filename
}

func (s *StorageService) publicURL(key string) string {
	if s.config.Storage.PublicEndpoint != "" {
		return fmt.Sprintf("%s/object/public/%s/%s",
			strings.TrimRight(s.config.Storage.PublicEndpoint, "/"),
			s.config.Storage.Bucket, key)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s",
		s.config.Storage.Bucket, s.config.Storage.Region, key)
}

// ValidateImage checks the file signature of an upload before it is stored.
func (s *StorageService) ValidateImage(file multipart.File) error {
	buffer := make([]byte, 512)
	_, err := file.Read(buffer)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	// Reset file pointer
	file.Seek(0, 0)

	if !isValidImageType(buffer) {
		return fmt.Errorf("invalid image file")
	}

	return nil
}

func isValidImageType(buffer []byte) bool {
	// JPEG
	if len(buffer) >= 3 && buffer[0] == 0xFF && buffer[1] == 0xD8 && buffer[2] == 0xFF {
		return true
	}

	// PNG
	if len(buffer) >= 8 && buffer[0] == 0x89 && buffer[1] == 0x50 && buffer[2] == 0x4E && buffer[3] == 0x47 {
		return true
	}

	// WebP ("RIFF....WEBP")
	if len(buffer) >= 12 && string(buffer[0:4]) == "RIFF" && string(buffer[8:12]) == "WEBP" {
		return true
	}

	return false
}
