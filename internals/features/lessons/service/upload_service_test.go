package service

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"io"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"kelasvideo_backend/internals/configs"
	"kelasvideo_backend/internals/features/lessons/model"
	"kelasvideo_backend/internals/helpers/storage"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.LessonModel{}, &model.VideoModel{}))
	return db
}

func testConfig() *configs.Config {
	return &configs.Config{
		MaxUploadBytes: 1024,
		UploadFolder:   "educational_videos",
	}
}

type fakeStorage struct {
	videoCalls        int
	imageCalls        int
	destroyCalls      []string
	destroyImageCalls []string

	uploadResult *storage.UploadResult
	uploadErr    error
	destroyErr   error
}

func (f *fakeStorage) UploadVideo(ctx context.Context, r io.Reader, folder string) (*storage.UploadResult, error) {
	f.videoCalls++
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	if f.uploadResult != nil {
		return f.uploadResult, nil
	}
	return &storage.UploadResult{
		SecureURL: "https://res.example.com/video/upload/abc.mp4",
		PublicID:  "educational_videos/abc",
	}, nil
}

func (f *fakeStorage) UploadImage(ctx context.Context, r io.Reader, folder string) (*storage.UploadResult, error) {
	f.imageCalls++
	return &storage.UploadResult{
		SecureURL: "https://res.example.com/image/upload/thumb.webp",
		PublicID:  "educational_videos/thumbnails/thumb",
	}, nil
}

func (f *fakeStorage) Destroy(ctx context.Context, publicID string) error {
	f.destroyCalls = append(f.destroyCalls, publicID)
	return f.destroyErr
}

func (f *fakeStorage) DestroyImage(ctx context.Context, publicID string) error {
	f.destroyImageCalls = append(f.destroyImageCalls, publicID)
	return f.destroyErr
}

func uploadInput(file io.Reader) UploadInput {
	return UploadInput{
		Title:       "Aljabar Dasar",
		Category:    "Matematika",
		Language:    "Indonesian",
		ContentType: "video/mp4",
		File:        file,
		Uploader:    "bu_guru",
	}
}

func fiberCode(t *testing.T, err error) int {
	t.Helper()
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	return fe.Code
}

func TestAcceptUploadCreatesPendingVideo(t *testing.T) {
	db := newTestDB(t)
	media := &fakeStorage{}

	video, err := AcceptUpload(context.Background(), db, media, testConfig(),
		uploadInput(strings.NewReader("fake-video-bytes")))
	require.NoError(t, err)

	assert.Equal(t, model.StatusPending, video.VideoApprovalStatus)
	assert.Equal(t, "https://res.example.com/video/upload/abc.mp4", video.VideoURL)
	assert.Equal(t, "educational_videos/abc", video.VideoPublicID)

	// juga pending di DB, bukan cuma di struct balikan
	var stored model.VideoModel
	require.NoError(t, db.First(&stored, "video_id = ?", video.VideoID).Error)
	assert.Equal(t, model.StatusPending, stored.VideoApprovalStatus)
}

func TestAcceptUploadRejectsUnsupportedTypeBeforeStorage(t *testing.T) {
	db := newTestDB(t)
	media := &fakeStorage{}

	in := uploadInput(strings.NewReader("not-a-video"))
	in.ContentType = "application/pdf"

	_, err := AcceptUpload(context.Background(), db, media, testConfig(), in)
	assert.Equal(t, fiber.StatusUnsupportedMediaType, fiberCode(t, err))

	// tidak boleh ada network call dan tidak boleh ada lesson yang keburu dibuat
	assert.Zero(t, media.videoCalls)
	var lessons int64
	db.Model(&model.LessonModel{}).Count(&lessons)
	assert.Zero(t, lessons)
}

func TestAcceptUploadEmptyPayload(t *testing.T) {
	db := newTestDB(t)
	media := &fakeStorage{}

	_, err := AcceptUpload(context.Background(), db, media, testConfig(),
		uploadInput(bytes.NewReader(nil)))

	// 0 byte = EmptyPayload (400), BUKAN kegagalan upload (502)
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
	assert.Zero(t, media.videoCalls)
}

func TestAcceptUploadPayloadTooLarge(t *testing.T) {
	db := newTestDB(t)
	media := &fakeStorage{}
	cfg := testConfig() // MaxUploadBytes = 1024

	big := bytes.Repeat([]byte("x"), 2048)
	_, err := AcceptUpload(context.Background(), db, media, cfg,
		uploadInput(bytes.NewReader(big)))

	assert.Equal(t, fiber.StatusRequestEntityTooLarge, fiberCode(t, err))
	assert.Zero(t, media.videoCalls)
}

func TestAcceptUploadSecondCategoryIgnored(t *testing.T) {
	db := newTestDB(t)
	media := &fakeStorage{}
	cfg := testConfig()

	_, err := AcceptUpload(context.Background(), db, media, cfg,
		uploadInput(strings.NewReader("video-1")))
	require.NoError(t, err)

	in := uploadInput(strings.NewReader("video-2"))
	in.Category = "Fisika" // judul sama, kategori beda → diabaikan
	_, err = AcceptUpload(context.Background(), db, media, cfg, in)
	require.NoError(t, err)

	var lesson model.LessonModel
	require.NoError(t, db.First(&lesson, "lesson_title = ?", "Aljabar Dasar").Error)
	assert.Equal(t, "Matematika", lesson.LessonCategory)

	var lessons int64
	db.Model(&model.LessonModel{}).Count(&lessons)
	assert.EqualValues(t, 1, lessons)
	var videos int64
	db.Model(&model.VideoModel{}).Count(&videos)
	assert.EqualValues(t, 2, videos)
}

func TestAcceptUploadStorageIntegrityError(t *testing.T) {
	db := newTestDB(t)
	// host balas sukses tapi tanpa public_id → integritas rusak, operasi batal
	media := &fakeStorage{uploadResult: &storage.UploadResult{
		SecureURL: "https://res.example.com/video/upload/abc.mp4",
		PublicID:  "",
	}}

	_, err := AcceptUpload(context.Background(), db, media, testConfig(),
		uploadInput(strings.NewReader("video")))
	assert.Equal(t, fiber.StatusBadGateway, fiberCode(t, err))

	// video batal...
	var videos int64
	db.Model(&model.VideoModel{}).Count(&videos)
	assert.Zero(t, videos)

	// ...tapi lesson baru TIDAK di-rollback (inkonsistensi yang memang dipertahankan)
	var lessons int64
	db.Model(&model.LessonModel{}).Count(&lessons)
	assert.EqualValues(t, 1, lessons)
}

// Insert judul duplikat harus terbaca sebagai gorm.ErrDuplicatedKey; tanpa
// translasi error driver, cabang pemulihan balapan judul tidak pernah jalan.
func TestDuplicateLessonTitleTranslated(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&model.LessonModel{
		LessonTitle:    "Aljabar Dasar",
		LessonCategory: "Matematika",
	}).Error)

	err := db.Create(&model.LessonModel{
		LessonTitle:    "Aljabar Dasar",
		LessonCategory: "Fisika",
	}).Error
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))))
	return buf.Bytes()
}

// Selain URL tayang, public_id thumbnail juga harus tersimpan supaya
// DeleteLesson bisa membersihkannya di media host.
func TestSetLessonThumbnailPersistsHandle(t *testing.T) {
	db := newTestDB(t)
	media := &fakeStorage{}
	lesson := model.LessonModel{LessonTitle: "Aljabar Dasar", LessonCategory: "Matematika"}
	require.NoError(t, db.Create(&lesson).Error)

	require.NoError(t, SetLessonThumbnail(context.Background(), db, media, testConfig(),
		lesson.LessonID, bytes.NewReader(pngBytes(t)), "thumb.png"))

	var stored model.LessonModel
	require.NoError(t, db.First(&stored, "lesson_id = ?", lesson.LessonID).Error)
	require.NotNil(t, stored.LessonThumbnailURL)
	assert.Equal(t, "https://res.example.com/image/upload/thumb.webp", *stored.LessonThumbnailURL)
	assert.Equal(t, "educational_videos/thumbnails/thumb", stored.LessonThumbnailPublicID)
	assert.Equal(t, 1, media.imageCalls)
}

func TestAcceptUploadStorageTransportError(t *testing.T) {
	db := newTestDB(t)
	media := &fakeStorage{uploadErr: errors.New("connection reset")}

	_, err := AcceptUpload(context.Background(), db, media, testConfig(),
		uploadInput(strings.NewReader("video")))
	assert.Equal(t, fiber.StatusBadGateway, fiberCode(t, err))

	var videos int64
	db.Model(&model.VideoModel{}).Count(&videos)
	assert.Zero(t, videos)
}
