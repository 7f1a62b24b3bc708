package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"kelasvideo_backend/internals/configs"
)

// UploadResult: url tayang + handle untuk delete di media host.
type UploadResult struct {
	SecureURL string
	PublicID  string
}

// VideoStorage diabstraksi supaya service bisa dites tanpa Cloudinary beneran.
type VideoStorage interface {
	UploadVideo(ctx context.Context, r io.Reader, folder string) (*UploadResult, error)
	UploadImage(ctx context.Context, r io.Reader, folder string) (*UploadResult, error)
	Destroy(ctx context.Context, publicID string) error
	DestroyImage(ctx context.Context, publicID string) error
}

/* =======================================================================
   Cloudinary Service
======================================================================= */

type CloudinaryService struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryService(cfg *configs.Config) (*CloudinaryService, error) {
	if strings.TrimSpace(cfg.CloudinaryURL) == "" {
		return nil, fmt.Errorf("missing env: CLOUDINARY_URL")
	}
	cld, err := cloudinary.NewFromURL(cfg.CloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("cloudinary.NewFromURL: %w", err)
	}
	return &CloudinaryService{cld: cld}, nil
}

func (s *CloudinaryService) UploadVideo(ctx context.Context, r io.Reader, folder string) (*UploadResult, error) {
	res, err := s.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		ResourceType:   "video",
		Folder:         folder,
		UseFilename:    api.Bool(true),
		UniqueFilename: api.Bool(true),
		Overwrite:      api.Bool(false),
	})
	if err != nil {
		return nil, err
	}
	return &UploadResult{SecureURL: res.SecureURL, PublicID: res.PublicID}, nil
}

func (s *CloudinaryService) UploadImage(ctx context.Context, r io.Reader, folder string) (*UploadResult, error) {
	res, err := s.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		ResourceType:   "image",
		Folder:         folder,
		UseFilename:    api.Bool(true),
		UniqueFilename: api.Bool(true),
		Overwrite:      api.Bool(false),
	})
	if err != nil {
		return nil, err
	}
	return &UploadResult{SecureURL: res.SecureURL, PublicID: res.PublicID}, nil
}

func (s *CloudinaryService) Destroy(ctx context.Context, publicID string) error {
	return s.destroy(ctx, publicID, "video")
}

// DestroyImage untuk aset thumbnail; public_id image tidak bisa dihapus
// lewat resource_type video.
func (s *CloudinaryService) DestroyImage(ctx context.Context, publicID string) error {
	return s.destroy(ctx, publicID, "image")
}

func (s *CloudinaryService) destroy(ctx context.Context, publicID, resourceType string) error {
	res, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: resourceType,
	})
	if err != nil {
		return err
	}
	// "not found" dianggap sudah terhapus
	if res.Result != "ok" && res.Result != "not found" {
		return fmt.Errorf("destroy %s: %s", publicID, res.Result)
	}
	return nil
}
