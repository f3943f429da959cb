package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"github.com/google/uuid"
	xdraw "golang.org/x/image/draw"

	"github.com/sharpfade/barber-booking/internal/config"
)

const maxImageWidth = 1600

// GalleryStorage guarda as fotos da galeria num bucket S3. Todo upload
// é normalizado: redimensionado quando largo demais e reencodado em
// webp, com chave uuid.
type GalleryStorage struct {
	client *s3.Client
	bucket string
	public string
	region string
}

func NewGalleryStorage(cfg *config.Config) *GalleryStorage {
	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	}

	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	return &GalleryStorage{
		client: s3.New(opts),
		bucket: cfg.S3Bucket,
		public: strings.TrimRight(cfg.S3PublicURL, "/"),
		region: cfg.S3Region,
	}
}

// Upload lê a imagem original (jpeg/png), normaliza e envia ao bucket.
// Devolve a chave do objeto e a URL pública.
func (g *GalleryStorage) Upload(ctx context.Context, r io.Reader) (string, string, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return "", "", fmt.Errorf("decode image: %w", err)
	}

	src = shrink(src)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Quality: 85}); err != nil {
		return "", "", fmt.Errorf("encode webp: %w", err)
	}

	key := uuid.NewString() + ".webp"

	_, err = g.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(g.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", "", fmt.Errorf("put object: %w", err)
	}

	return key, g.URL(key), nil
}

func (g *GalleryStorage) Delete(ctx context.Context, key string) error {
	_, err := g.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(g.bucket),
		Key:    aws.String(key),
	})
	return err
}

func (g *GalleryStorage) URL(key string) string {
	if g.public != "" {
		return g.public + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", g.bucket, g.region, key)
}

func shrink(src image.Image) image.Image {
	bounds := src.Bounds()
	if bounds.Dx() <= maxImageWidth {
		return src
	}

	height := bounds.Dy() * maxImageWidth / bounds.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, maxImageWidth, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, xdraw.Over, nil)
	return dst
}
